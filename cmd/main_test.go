package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingleHand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`["JH","4C","4S","JC","9H"]`, "two pair: jacks and 4s with 9 kicker"},
		{`["10H","JH","QH","KH","AH"]`, "royal flush"},
		{`["2C","3C","4C","5C","6C"]`, "straight flush: 6 high"},
		{`["AD","AC","AS","AH","6D"]`, "four of a kind: aces with 6 kicker"},
		{`["2H","5D","8C","9S","AH"]`, "high card: ace 9 8 5 2"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			code, stdout, _ := runCLI(t, "", tt.input)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestRunSplitArguments(t *testing.T) {
	code, stdout, _ := runCLI(t, "", `["JH",`, `"4C",`, `"4S",`, `"JC",`, `"9H"]`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "two pair: jacks and 4s with 9 kicker", strings.TrimSpace(stdout))
}

func TestRunSingleHandErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"invalid rank", `["1H","2C","3D","4S","5H"]`, "1H is not a valid card"},
		{"duplicate", `["AS","AS","3D","4S","5H"]`, "5 unique cards"},
		{"short", `["AS","3D"]`, "5 unique cards"},
		{"number element", `["AS",3,"3D","4S","5H"]`, "must be type string"},
		{"single quotes", `['3D', '6H', '9S', 'JD', '8S']`, "Decoding JSON array failed"},
		{"object", `{"key":["2C","JS","2H","5S","10D"]}`, "Valid JSON, but not an array"},
		{"string", `"JH"`, "Valid JSON, but not an array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", tt.input)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRunPromptLoop(t *testing.T) {
	stdin := strings.Join([]string{
		`["JH","4C","4S","JC","9H"]`,
		`not json`,
		`["QS","QC","QH","9S","9H"]`,
		``,
		`["2H","5D","8C","9S","AH"]`,
	}, "\n")
	code, stdout, _ := runCLI(t, stdin)
	assert.Equal(t, 0, code)

	assert.Equal(t, 4, strings.Count(stdout, prompt))
	assert.Contains(t, stdout, "two pair: jacks and 4s with 9 kicker")
	assert.Contains(t, stdout, "Decoding JSON array failed")
	assert.Contains(t, stdout, "full house: queens full of 9s")
	// input after the blank line is never read
	assert.NotContains(t, stdout, "high card")
}

func TestRunPromptLoopEndOfInput(t *testing.T) {
	code, stdout, _ := runCLI(t, `["2H","5D","8C","9S","AH"]`)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "high card: ace 9 8 5 2")
}

func TestRunVerbose(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "-verbose", `["AD","AC","AS","AH","6D"]`)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "four of a kind: aces with 6 kicker")
	assert.Contains(t, stdout, "Strength:")
	assert.Contains(t, stdout, "Evaluator:")
}

func TestRunDeal(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "-plain", "-deal", "3", "-verbose")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Category")
	assert.Contains(t, stdout, "Strength")
	for _, n := range []string{"1", "2", "3"} {
		assert.Contains(t, stdout, n)
	}
}

func TestRunBadFlags(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-deal", "11")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "-deal must be between 0 and 10")

	code, _, _ = runCLI(t, "", "-nope")
	assert.Equal(t, 2, code)
}

func TestLoadJSONArray(t *testing.T) {
	valid := map[string][]any{
		`[]`:                              {},
		`["e"]`:                           {"e"},
		`["hi", "there", "3"]`:            {"hi", "there", "3"},
		`["10H", "JH", "QH", "KH", "AH"]`: {"10H", "JH", "QH", "KH", "AH"},
		`["9S", "2H", "6D", "KH", "4C"]`:  {"9S", "2H", "6D", "KH", "4C"},
	}
	for input, want := range valid {
		got, err := loadJSONArray(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{`{}`, `"JH"`, `"aadlfjdlafkj"`, `{"key":["2C"]}`, `3`, `null`} {
		_, err := loadJSONArray(input)
		assert.ErrorIs(t, err, errNotArray, input)
	}
	for _, input := range []string{`['3D', '6H']`, `[`, ``, `["AH",]`} {
		_, err := loadJSONArray(input)
		assert.ErrorIs(t, err, errDecodeJSON, input)
	}
}
