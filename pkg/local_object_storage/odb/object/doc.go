/*
Package object implements decoding of loose objects.

After decompression every object is framed as

	<kind> <size>\x00<payload>

where kind is an ASCII type tag, size is a decimal payload length and the
payload is exactly size bytes long with nothing after it. Only blobs are
supported for now: adding a kind means extending Kind, ParseKind and the
dispatch in Copy.
*/
package object
