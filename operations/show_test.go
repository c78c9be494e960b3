package operations

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/fun/ers"
	"github.com/tychoish/fun/testt"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"

	"github.com/tychoish/procinfo"
)

var fixture = procinfo.Identity{
	PID:           4242,
	Hostname:      "db1.internal.example.com",
	ShortHostname: "db1",
	ProgramName:   "procinfo",
}

func TestRender(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		out, err := Render(fixture, &ShowOptions{})
		assert.NotError(t, err)
		testt.Log(t, string(out))

		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		assert.Equal(t, len(lines), 4)
		check.True(t, strings.HasPrefix(lines[0], "pid:"))
		check.True(t, strings.HasSuffix(lines[0], "4242"))
		check.True(t, strings.HasSuffix(lines[1], "db1.internal.example.com"))
		check.True(t, strings.HasSuffix(lines[2], " db1"))
		check.True(t, strings.HasSuffix(lines[3], "procinfo"))
	})
	t.Run("JSON", func(t *testing.T) {
		out, err := Render(fixture, &ShowOptions{Format: "json"})
		assert.NotError(t, err)
		check.True(t, strings.HasSuffix(string(out), "}\n"))

		var rt procinfo.Identity
		assert.NotError(t, json.Unmarshal(out, &rt))
		check.Equal(t, rt, fixture)
	})
	t.Run("ColorJSON", func(t *testing.T) {
		out, err := Render(fixture, &ShowOptions{Format: "json", Color: true})
		assert.NotError(t, err)
		check.True(t, strings.Contains(string(out), "short_hostname"))
		check.True(t, strings.Contains(string(out), "db1.internal.example.com"))
	})
	t.Run("YAML", func(t *testing.T) {
		out, err := Render(fixture, &ShowOptions{Format: "yaml"})
		assert.NotError(t, err)

		var rt procinfo.Identity
		assert.NotError(t, yaml.Unmarshal(out, &rt))
		check.Equal(t, rt, fixture)
	})
	t.Run("BSON", func(t *testing.T) {
		out, err := Render(fixture, &ShowOptions{Format: "bson"})
		assert.NotError(t, err)

		var rt procinfo.Identity
		assert.NotError(t, bson.Unmarshal(out, &rt))
		check.Equal(t, rt, fixture)
	})
	t.Run("Field", func(t *testing.T) {
		for field, expected := range map[string]string{
			"pid":            "4242",
			"hostname":       "db1.internal.example.com",
			"short_hostname": "db1",
			"program_name":   "procinfo",
		} {
			out, err := Render(fixture, &ShowOptions{Format: "yaml", Field: field})
			assert.NotError(t, err)
			check.Equal(t, string(out), expected+"\n")
		}
	})
	t.Run("UnknownField", func(t *testing.T) {
		out, err := Render(fixture, &ShowOptions{Field: "uid"})
		assert.Error(t, err)
		check.True(t, ers.Is(err, ErrUnknownField))
		check.Equal(t, len(out), 0)
	})
	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := Render(fixture, &ShowOptions{Format: "xml"})
		assert.Error(t, err)
		check.True(t, ers.Is(err, ErrUnsupportedFormat))
	})
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", "bson"} {
		check.NotError(t, validateFormat(format))
	}
	check.Error(t, validateFormat("xml"))
	check.Error(t, validateFormat(""))
}

func TestVersionInfo(t *testing.T) {
	info := versionInfo(fixture)
	check.True(t, strings.Contains(info, "name: procinfo"))
	check.True(t, strings.Contains(info, "build: <UNKNOWN>"))
	check.True(t, strings.Contains(info, "process: procinfo[4242]@db1.internal.example.com"))
	check.True(t, !strings.Contains(info, "built:"))

	built := time.Date(2026, time.October, 19, 12, 30, 0, 0, time.UTC)
	info = formatVersionInfo(fixture, built)
	check.True(t, strings.Contains(info, "built: 2026-10-19 12:30:00"))
	check.True(t, strings.HasSuffix(info, "process: procinfo[4242]@db1.internal.example.com"))
}

func TestCommander(t *testing.T) {
	cmd := Commander()
	assert.NotNil(t, cmd)
	assert.NotNil(t, Show())
	assert.NotNil(t, Version())
}
