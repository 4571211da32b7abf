/*
Package fstree implements a read-only loose object storage.

Each object is stored as a zlib-compressed file in a directory tree under
the objects directory of the storage root. Given that handling many files
in the same directory is usually problematic for file systems objects are
grouped into subdirectories named by the first [DirNameLen] characters of
their hexadecimal identifiers, file name is the rest of the identifier.

For example, an object with identifier ce013625030ba8dba906f756967f9e9ca394464a
is stored in the following file:

	<root>/objects/ce/013625030ba8dba906f756967f9e9ca394464a

Object identifiers are not checked against the contents: the storage returns
whatever is stored under the name.
*/
package fstree
