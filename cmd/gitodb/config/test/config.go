package configtest

import (
	"testing"

	"github.com/nspcc-dev/gitodb/cmd/gitodb/config"
	"github.com/stretchr/testify/require"
	"github.com/subosito/gotenv"
)

func fromFile(t testing.TB, path string) *config.Config {
	var p config.Prm

	c, err := config.New(p,
		config.WithConfigFile(path),
	)
	require.NoError(t, err)

	return c
}

func forEachFile(t testing.TB, paths []string, f func(*config.Config)) {
	for i := range paths {
		f(fromFile(t, paths[i]))
	}
}

// ForEachFileType passes configs read from next files:
//   - `<pref>.yaml`;
//   - `<pref>.json`.
func ForEachFileType(t testing.TB, pref string, f func(*config.Config)) {
	forEachFile(t, []string{
		pref + ".yaml",
		pref + ".json",
	}, f)
}

// EmptyConfig returns config without any values and sections.
func EmptyConfig(t testing.TB) *config.Config {
	var p config.Prm

	c, err := config.New(p)
	require.NoError(t, err)

	return c
}

// ForEnvFileType sets ENV variables from `<pref>.env` file for the test
// duration and passes the config without a file to f.
func ForEnvFileType(t *testing.T, pref string, f func(*config.Config)) {
	envs, err := gotenv.Read(pref + ".env")
	require.NoError(t, err)

	for k, v := range envs {
		t.Setenv(k, v)
	}

	f(EmptyConfig(t))
}
