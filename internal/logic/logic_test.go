package logic_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goshift/internal/config"
	"github.com/idelchi/goshift/internal/logic"
	"github.com/idelchi/goshift/internal/shift"
)

func newConfig(files ...string) *config.Config {
	return &config.Config{
		Quiet:         true,
		Shift:         shift.DefaultShift,
		Parallel:      1,
		EncryptSuffix: ".enc",
		DecryptSuffix: ".dec",
		Files:         files,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestRunDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "abc")
	writeFile(t, filepath.Join(dir, "nested", "b.txt"), "\xe4\xb8\xad")

	require.NoError(t, logic.Run(newConfig(dir), zerolog.Nop()))

	assert.Equal(t, "def", readFile(t, filepath.Join(dir, "a.txt.enc")))
	assert.Equal(t, "\xe7\xbb\xb0", readFile(t, filepath.Join(dir, "nested", "b.txt.enc")))

	cfg := newConfig(dir)
	cfg.Decrypt = true

	require.NoError(t, logic.Run(cfg, zerolog.Nop()))

	assert.Equal(t, "abc", readFile(t, filepath.Join(dir, "a.txt.dec")))
	assert.Equal(t, "\xe4\xb8\xad", readFile(t, filepath.Join(dir, "nested", "b.txt.dec")))
}

func TestRunDry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "abc")

	cfg := newConfig(dir)
	cfg.Dry = true

	require.NoError(t, logic.Run(cfg, zerolog.Nop()))
	assert.NoFileExists(t, filepath.Join(dir, "a.txt.enc"))
}

func TestRunNothingToDecrypt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "abc")

	cfg := newConfig(dir)
	cfg.Decrypt = true

	require.Error(t, logic.Run(cfg, zerolog.Nop()))
}

func TestRunSingle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plain := filepath.Join(dir, "in.txt")
	cipher := filepath.Join(dir, "out.txt")
	decoded := filepath.Join(dir, "back.txt")

	writeFile(t, plain, "h\xc3\xa9llo")

	require.NoError(t, logic.RunSingle(newConfig(), zerolog.Nop(), plain, cipher))
	assert.Equal(t, "k\xc6\xacoor", readFile(t, cipher))

	cfg := newConfig()
	cfg.Decrypt = true

	require.NoError(t, logic.RunSingle(cfg, zerolog.Nop(), cipher, decoded))
	assert.Equal(t, "h\xc3\xa9llo", readFile(t, decoded))
}

func TestRunSingleMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	require.Error(t, logic.RunSingle(newConfig(), zerolog.Nop(), filepath.Join(dir, "missing.txt"), out))
	assert.NoFileExists(t, out)
}

func TestRunSingleUnwritableOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	writeFile(t, in, "abc")

	out := filepath.Join(dir, "missing", "out.txt")

	require.NoError(t, logic.RunSingle(newConfig(), zerolog.Nop(), in, out), "write failures are reported, not returned")
	assert.NoFileExists(t, out)
}

func TestRunDemo(t *testing.T) {
	t.Parallel()

	for _, envelope := range []bool{false, true} {
		dir := t.TempDir()
		files := logic.DemoFiles{
			Plain:   filepath.Join(dir, "plain.txt"),
			Cipher:  filepath.Join(dir, "ciphers.txt"),
			Decoded: filepath.Join(dir, "decode.txt"),
		}

		writeFile(t, files.Plain, "Hello, \xe4\xb8\x96\xe7\x95\x8c!\n")

		cfg := newConfig()
		cfg.Envelope = envelope

		require.NoError(t, logic.RunDemo(cfg, zerolog.Nop(), files))

		assert.NotEqual(t, readFile(t, files.Plain), readFile(t, files.Cipher))
		assert.Equal(t, readFile(t, files.Plain), readFile(t, files.Decoded))
	}
}

func TestRunDemoSkipsUnwritableCipher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := logic.DemoFiles{
		Plain:   filepath.Join(dir, "plain.txt"),
		Cipher:  filepath.Join(dir, "missing", "ciphers.txt"),
		Decoded: filepath.Join(dir, "decode.txt"),
	}

	writeFile(t, files.Plain, "abc")

	require.NoError(t, logic.RunDemo(newConfig(), zerolog.Nop(), files))

	assert.NoFileExists(t, files.Cipher)
	assert.Equal(t, "abc", readFile(t, files.Decoded))
}

func TestRunDemoMissingPlain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := logic.DemoFiles{
		Plain:   filepath.Join(dir, "plain.txt"),
		Cipher:  filepath.Join(dir, "ciphers.txt"),
		Decoded: filepath.Join(dir, "decode.txt"),
	}

	require.Error(t, logic.RunDemo(newConfig(), zerolog.Nop(), files))
	assert.NoFileExists(t, files.Cipher)
	assert.NoFileExists(t, files.Decoded)
}

func TestRunClassify(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "text.txt")
	bin := filepath.Join(dir, "bin.dat")

	writeFile(t, text, "a\xc3\xa9")
	writeFile(t, bin, "\xff\x00")

	var logs bytes.Buffer

	out := captureStdout(t, func() {
		require.NoError(t, logic.RunClassify(newConfig(dir), zerolog.New(&logs).Level(zerolog.DebugLevel)))
	})

	assert.Contains(t, out, text+": MultiByteText")
	assert.Contains(t, out, bin+": SingleByteOrUnstructured")

	assert.Contains(t, logs.String(), `"sequences":2`)
	assert.Equal(t, 1, strings.Count(logs.String(), "sequences"), "only text files log their sequences")
}

// captureStdout returns what fn prints to os.Stdout. Callers must not run in parallel.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w

	defer func() { os.Stdout = stdout }()

	fn()

	require.NoError(t, w.Close())

	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(data)
}
