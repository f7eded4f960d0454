package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmidash.org/internal/bmi"
	"bmidash.org/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "15", "22.5", "41")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Underweight (Severe thinness)")
	assert.Contains(t, lines[1], "Normal range")
	assert.Contains(t, lines[2], "Obese (Class III)")

	_, err = execute(t, "classify", "heavy")
	assert.Error(t, err)
	_, err = execute(t, "classify", "NaN")
	assert.Error(t, err)
	_, err = execute(t, "classify")
	assert.Error(t, err)
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"ok", []string{"--height", "180", "--weight", "75"}, []string{"Normal range (23.15)", "(According to WHO)"}},
		{"missing", []string{"--height", "180"}, []string{"Please enter your data"}},
		{"zero height", []string{"--height", "0", "--weight", "70"}, []string{"Height must be greater than zero"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"calc"}, tt.args...)...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCurveCommand(t *testing.T) {
	out, err := execute(t, "curve", "--bmi", "20", "--min-height", "170", "--max-height", "190", "--step", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "BMI: 20")
	assert.Contains(t, out, "170 cm    57.80 kg")
	assert.Contains(t, out, "180 cm    64.80 kg")
	assert.NotContains(t, out, "190 cm")

	_, err = execute(t, "curve", "--min-height", "200", "--max-height", "100")
	assert.Error(t, err)
	_, err = execute(t, "curve", "--step", "0")
	assert.Error(t, err)
}

func TestDistributionCommand(t *testing.T) {
	out, err := execute(t, "distribution", "--data", models.GetFixturePath(t, "BMI.csv"), "--width", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "BMI distribution (200 rows)")
	assert.Contains(t, out, " 45.0% (90)")
	for _, c := range bmi.Categories() {
		assert.Contains(t, out, c.Label)
	}

	_, err = execute(t, "distribution", "--data", "bmi.xlsx")
	assert.Error(t, err)
}

func TestBar(t *testing.T) {
	assert.Equal(t, 10, len([]rune(bar(0.5, 10, terminalColors["Green"]))))
	assert.Equal(t, strings.Repeat("█", 4), bar(2, 4, terminalColors["Red"]))
	assert.Equal(t, strings.Repeat("░", 4), bar(-1, 4, terminalColors["Red"]))
}
