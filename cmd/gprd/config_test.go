package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, ":9092", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoadConfig_File(t *testing.T) {
	dir, err := ioutil.TempDir("", "gprd")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	name := filepath.Join(dir, "gprd.yml")
	err = ioutil.WriteFile(name, []byte("addr: \":8080\"\ndata_dir: /srv/gcode\n"), 0644)
	assert.NoError(t, err)

	cfg, err := loadConfig(name)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/srv/gcode", cfg.DataDir)
}

func TestLoadConfig_Partial(t *testing.T) {
	dir, err := ioutil.TempDir("", "gprd")
	assert.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	name := filepath.Join(dir, "gprd.yml")
	err = ioutil.WriteFile(name, []byte("addr: \":8080\"\n"), 0644)
	assert.NoError(t, err)

	// Unset keys keep their defaults.
	cfg, err := loadConfig(name)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig("/does/not/exist.yml")
	assert.Error(t, err)
}
