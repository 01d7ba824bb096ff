package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mdconv/internal/config"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

const integerXSD = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="a">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="b" type="xs:integer"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func resetValidateFlags() {
	validateFlags = validateFlagValues{encoding: mdconv.DefaultEncoding}
}

func resetTransformFlags() {
	transformFlags = transformFlagValues{encoding: mdconv.DefaultEncoding}
}

func resetConvertFlags() {
	convertFlags = convertFlagValues{}
}

func resetFormatsFlags() {
	formatsJSON = false
	lookupVersion = ""
}

// useConfigDir points --config at dir for the duration of the test.
func useConfigDir(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, rootCmd.PersistentFlags().Set("config", dir))
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("config", ".") })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFileName, content)
	return dir
}

// captureStdout returns what fn writes to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	fn()
	require.NoError(t, w.Close())
	return string(<-done)
}
