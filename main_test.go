package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/generator"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), cfg.seed)
	assert.Equal(t, dungeon.DefaultFloorProperties().Layout, cfg.props.Layout)
	assert.Equal(t, generator.StepMajor, cfg.verbosity)
	assert.Equal(t, colorAuto, cfg.colorMode)
	assert.Equal(t, dungeon.DefaultAdvancedGenerationSettings(), cfg.settings)
}

func TestParseFlags_Overrides(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-seed", "99", "-layout", "beetle", "-rooms", "-6", "-mh-chance", "40",
		"-fix-dead-ends", "-floors", "8", "-v",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, uint32(99), cfg.seed)
	assert.Equal(t, dungeon.LayoutBeetle, cfg.props.Layout)
	assert.Equal(t, -6, cfg.props.RoomDensity)
	assert.Equal(t, 40, cfg.props.MonsterHouseChance)
	assert.True(t, cfg.settings.FixDeadEndValidationError)
	assert.Equal(t, 9, cfg.dungeon.NumFloorsPlusOne)
	assert.Equal(t, generator.StepMinor, cfg.verbosity)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown layout", []string{"-layout", "spiral"}, dungeon.ErrUnknownLayout},
		{"chance too high", []string{"-shop-chance", "150"}, dungeon.ErrChanceOutOfRange},
		{"negative traps", []string{"-traps", "-1"}, dungeon.ErrNegativeValue},
		{"bad colour mode", []string{"-color", "sometimes"}, errBadColorMode},
		{"bad verbosity", []string{"-verbosity", "loud"}, generator.ErrUnknownStepLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_PrintsMapAndDumps(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "floor.txt")
	cfg, err := parseFlags([]string{"-seed", "5", "-color", "never", "-dump", dump}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil))))

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), world.FloorHeight)
	assert.Len(t, lines[0], world.FloorWidth*2-1)
	assert.Contains(t, out.String(), "Seed 5")

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--- Metadata ---")
}

func TestRun_ColorAlwaysIgnoresDetection(t *testing.T) {
	level, enabled := color.TermColorLevel(), color.Enable
	t.Cleanup(func() {
		color.ForceSetColorLevel(level)
		color.Enable = enabled
	})

	// As detected without TERM
	color.ForceSetColorLevel(0)

	cfg, err := parseFlags([]string{"-seed", "5", "-color", "always"}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil))))

	assert.Contains(t, out.String(), "\x1b[")
	assert.NotEqual(t, out.String(), color.ClearCode(out.String()))
}

func TestRun_ColorNeverIsPlain(t *testing.T) {
	cfg, err := parseFlags([]string{"-seed", "5", "-color", "never"}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil))))

	assert.NotContains(t, out.String(), "\x1b[")
}
