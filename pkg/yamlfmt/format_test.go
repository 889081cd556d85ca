// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"carvel.dev/yamlpad/pkg/yamlfmt"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var formatSamples = []string{
	"a: 1\n",
	"a:\n  b: 1\nc:\n  - 1\n  - 2\n",
	"# top\nkey: value # trailing\nother:\n    # nested\n    x: y\n",
	"zeta: 1\nalpha: 2\nmid:\n- one\n- two: 2\n  three: 3\n",
	"text: |\n  line one\n  line two\nfolded: >\n  a\n  b\n",
	"flow: {a: 1, b: [x, y]}\nempty: []\nnone: {}\n",
	"base: &b\n  k: v\nuse:\n  <<: *b\n",
	"a: 1\n---\nb: 2\n---\n- x\n",
	"---\n---\na: 1\n",
	"- - 1\n  - 2\n- - 3\n",
	"list:\n- a: 1\n  # between\n  b: 2\n",
	"# only a comment\n",
	"quoted: \"x\"\nsingle: 'y'\nnull_value:\ntilde: ~\n",
	"tagged: !custom {a: 1}\nstr: !!str 12\n",
	"multi: 'line\n\n  two'\n",
	"keep: |+\n  a\n\nnext: 1\n",
	"indented: |2\n    leading spaces\n",
}

func TestFormatIsIdempotent(t *testing.T) {
	for i, sample := range formatSamples {
		t.Run(fmt.Sprintf("sample %d", i), func(t *testing.T) {
			first := yamlfmt.Format(sample, yamlfmt.DefaultFormatOptions())
			require.Equal(t, yamlfmt.ResultFormatted, first.Kind, "sample: %q", sample)

			second := yamlfmt.Format(first.Text, yamlfmt.DefaultFormatOptions())
			require.Equal(t, yamlfmt.ResultFormatted, second.Kind)
			assert.Equal(t, first.Text, second.Text)
			assert.False(t, second.Changed)
		})
	}
}

func TestFormatPreservesData(t *testing.T) {
	for i, sample := range formatSamples {
		t.Run(fmt.Sprintf("sample %d", i), func(t *testing.T) {
			result := yamlfmt.Format(sample, yamlfmt.DefaultFormatOptions())
			require.Equal(t, yamlfmt.ResultFormatted, result.Kind)

			assert.Equal(t, decodeAll(t, sample), decodeAll(t, result.Text))
		})
	}
}

func TestFormatPreservesComments(t *testing.T) {
	for i, sample := range formatSamples {
		t.Run(fmt.Sprintf("sample %d", i), func(t *testing.T) {
			result := yamlfmt.Format(sample, yamlfmt.DefaultFormatOptions())
			require.Equal(t, yamlfmt.ResultFormatted, result.Kind)

			for _, line := range strings.Split(sample, "\n") {
				idx := strings.Index(line, "# ")
				if idx < 0 || strings.ContainsAny(line[:idx], `'"`) {
					continue
				}
				assert.Contains(t, result.Text, strings.TrimSpace(line[idx:]))
			}
		})
	}
}

func TestFormatKeepsKeyOrder(t *testing.T) {
	result := yamlfmt.Format("zeta: 1\nalpha:\n  y: 1\n  b: 2\nmid: 3\n", yamlfmt.DefaultFormatOptions())
	require.Equal(t, yamlfmt.ResultFormatted, result.Kind)
	assert.Equal(t, "zeta: 1\nalpha:\n  y: 1\n  b: 2\nmid: 3\n", result.Text)
}

func TestFormatCanonicalIndentation(t *testing.T) {
	src := "a:\n  b: 1\nc:\n  - 1\n  - 2\n"

	result := yamlfmt.Format(src, yamlfmt.DefaultFormatOptions())
	require.Equal(t, yamlfmt.ResultFormatted, result.Kind)
	assert.Equal(t, src, result.Text)
	assert.False(t, result.Changed)
	assert.Equal(t, "Already formatted", result.Message())

	result = yamlfmt.Format("a:\n      b: 1\nc:\n- 1\n- 2\n", yamlfmt.DefaultFormatOptions())
	require.Equal(t, yamlfmt.ResultFormatted, result.Kind)
	assert.Equal(t, src, result.Text)
	assert.True(t, result.Changed)
	assert.Equal(t, "Formatted", result.Message())
}

func TestFormatWithCustomOptions(t *testing.T) {
	opts := yamlfmt.FormatOptions{MappingIndent: 4, SequenceIndent: 2, SequenceOffset: 0}
	require.NoError(t, opts.Validate())

	result := yamlfmt.Format("a:\n  b: 1\nc:\n  - x: 1\n    y: 2\n", opts)
	require.Equal(t, yamlfmt.ResultFormatted, result.Kind)
	assert.Equal(t, "a:\n    b: 1\nc:\n- x: 1\n  y: 2\n", result.Text)

	again := yamlfmt.Format(result.Text, opts)
	assert.Equal(t, result.Text, again.Text)
}

func TestFormatEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\n", " \t\n "} {
		result := yamlfmt.Format(src, yamlfmt.DefaultFormatOptions())
		assert.Equal(t, yamlfmt.ResultEmpty, result.Kind, "source: %q", src)
		assert.Nil(t, result.Err)
		assert.Equal(t, "", result.Text)
		assert.Equal(t, "Nothing to format", result.Message())
	}
}

func TestFormatInvalid(t *testing.T) {
	for _, src := range []string{"a: [1, 2\n", "a: b: c\n", "key: \"unterminated\n", "a:\n\tb: 1\n"} {
		result := yamlfmt.FormatWithName(src, "input.yml", yamlfmt.DefaultFormatOptions())
		require.Equal(t, yamlfmt.ResultParseFailed, result.Kind, "source: %q", src)
		require.NotNil(t, result.Err)
		assert.Equal(t, "", result.Text)
		assert.Contains(t, result.Err.Error(), "input.yml")
		assert.True(t, strings.HasPrefix(result.Message(), "Invalid YAML: "))
	}
}

func TestFormatVersionDirective(t *testing.T) {
	result := yamlfmt.Format("%YAML 1.2\n---\nkey:   value\n", yamlfmt.DefaultFormatOptions())
	require.Equal(t, yamlfmt.ResultFormatted, result.Kind)
	assert.Nil(t, result.Err)
	assert.Contains(t, result.Text, "key: value")
	assert.NotContains(t, result.Text, "%YAML")
}

func TestFormatOptionsValidate(t *testing.T) {
	assert.NoError(t, yamlfmt.DefaultFormatOptions().Validate())
	assert.Error(t, yamlfmt.FormatOptions{MappingIndent: 0, SequenceIndent: 4, SequenceOffset: 2}.Validate())
	assert.Error(t, yamlfmt.FormatOptions{MappingIndent: 2, SequenceIndent: 4, SequenceOffset: -1}.Validate())
	assert.Error(t, yamlfmt.FormatOptions{MappingIndent: 2, SequenceIndent: 3, SequenceOffset: 2}.Validate())
}

func TestFormatInvalidOptionsAreRaised(t *testing.T) {
	result := yamlfmt.Format("a:\n  b:\n  - 1\n", yamlfmt.FormatOptions{})
	require.Equal(t, yamlfmt.ResultFormatted, result.Kind)
	assert.Equal(t, "a:\n b:\n - 1\n", result.Text)
}

type fuzzedConfig struct {
	Name     string            `yaml:"name"`
	Replicas int               `yaml:"replicas"`
	Enabled  bool              `yaml:"enabled"`
	Ratio    float64           `yaml:"ratio"`
	Tags     []string          `yaml:"tags"`
	Labels   map[string]string `yaml:"labels"`
	Ports    []fuzzedPort      `yaml:"ports"`
	Matrix   [][]string        `yaml:"matrix"`
}

type fuzzedPort struct {
	Name  string   `yaml:"name"`
	Port  int      `yaml:"port"`
	Hosts []string `yaml:"hosts"`
}

func TestFormatWithFuzzedInputs(t *testing.T) {
	const alphabet = "abc :#-'\"\n"

	fuzzer := fuzz.New().RandSource(getRandSource(t)).NilChance(0.2).NumElements(0, 3).Funcs(
		func(s *string, c fuzz.Continue) {
			var sb strings.Builder
			for i := c.Intn(10); i > 0; i-- {
				sb.WriteByte(alphabet[c.Intn(len(alphabet))])
			}
			*s = sb.String()
		},
	)

	for i := 0; i < 200; i++ {
		var config fuzzedConfig
		fuzzer.Fuzz(&config)

		src, err := yaml.Marshal(config)
		require.NoError(t, err)

		first := yamlfmt.Format(string(src), yamlfmt.DefaultFormatOptions())
		require.Equal(t, yamlfmt.ResultFormatted, first.Kind, "source:\n%s", src)
		require.Equal(t, decodeAll(t, string(src)), decodeAll(t, first.Text), "source:\n%s\nformatted:\n%s", src, first.Text)

		second := yamlfmt.Format(first.Text, yamlfmt.DefaultFormatOptions())
		require.Equal(t, first.Text, second.Text, "source:\n%s", src)
	}
}

func TestFormatNeverPanics(t *testing.T) {
	fuzzer := fuzz.New().RandSource(getRandSource(t))

	for i := 0; i < 500; i++ {
		var src string
		fuzzer.Fuzz(&src)

		assert.NotPanics(t, func() {
			result := yamlfmt.Format(src, yamlfmt.DefaultFormatOptions())
			if result.Kind == yamlfmt.ResultParseFailed {
				assert.NotNil(t, result.Err)
			}
		}, "source: %q", src)
	}
}

func decodeAll(t *testing.T, src string) []interface{} {
	var docs []interface{}
	dec := yaml.NewDecoder(strings.NewReader(src))
	for {
		var doc interface{}
		err := dec.Decode(&doc)
		if err != nil {
			require.Equal(t, "EOF", err.Error())
			return docs
		}
		docs = append(docs, doc)
	}
}

func getRandSource(t *testing.T) rand.Source {
	var seed int64
	if os.Getenv("YAMLPAD_SEED") == "" {
		seed = time.Now().UnixNano()
	} else {
		envSeed, err := strconv.Atoi(os.Getenv("YAMLPAD_SEED"))
		require.NoError(t, err)
		seed = int64(envSeed)
	}

	t.Logf("Seed used was: [%v]. To reproduce this test failure, re-run the test with `export YAMLPAD_SEED=%v`", seed, seed)

	return rand.NewSource(seed)
}
