package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oneconcern/hubgen/internal/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

// makeHubTree lays out a small input tree exercising every container kind.
func makeHubTree(t *testing.T) string {
	src := filepath.Join(t.TempDir(), "hg38")
	for _, dir := range []string{
		"genes.composite",
		"marks.super/H3K4me1.multiwig",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(src, dir), 0755))
	}
	for _, file := range []string{
		"input.bw",
		"genes.composite/genes.bb",
		"marks.super/H3K4me1.multiwig/sample1.bw",
		"marks.super/H3K4me1.multiwig/sample2.bw",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(src, file), []byte(rand.String(64)), 0644))
	}
	return src
}

func TestCliGenerate(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	src := makeHubTree(t)
	dest := filepath.Join(t.TempDir(), "hub-"+rand.LetterString(8))

	runCmd(t, []string{
		"generate", src,
		"--destination", dest,
	}, "generate a hub from a valid tree", false)

	payload, err := os.ReadFile(filepath.Join(dest, "trackDb.txt"))
	require.NoError(t, err)
	output := string(payload)
	assert.Contains(t, output, "track genes.composite\n")
	assert.Contains(t, output, "track marks.super\n")
	assert.Contains(t, output, "container multiWig")
	assert.Contains(t, output, "superTrack on")
	for i := 1; i <= 4; i++ {
		assert.Contains(t, output, fmt.Sprintf("track track_%d\n", i))
	}

	link := filepath.Join(dest, "track_3")
	fi, err := os.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, fi.Mode()&os.ModeSymlink)
	resolved, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src, "marks.super", "H3K4me1.multiwig", "sample1.bw"), resolved)

	// dumps are on by default: per-container in the source tree, whole tree in the destination
	_, err = os.Stat(filepath.Join(src, "container_config.used"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(src, "genes.composite", "container_config.used"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "trackDb.txt.hub_dict.yaml"))
	require.NoError(t, err)
}

func TestCliGenerateSkipDumps(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	src := makeHubTree(t)
	dest := filepath.Join(t.TempDir(), "hub-"+rand.LetterString(8))

	runCmd(t, []string{
		"generate", src,
		"--destination", dest,
		"--skip-dumps",
	}, "generate a hub without dump files", false)

	_, err := os.Stat(filepath.Join(dest, "trackDb.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(src, "container_config.used"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, "trackDb.txt.hub_dict.yaml"))
	require.True(t, os.IsNotExist(err))
}

func TestCliGenerateEmptyTrackDb(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	src := makeHubTree(t)
	dest := filepath.Join(t.TempDir(), "hub-"+rand.LetterString(8))

	runCmd(t, []string{
		"generate", src,
		"--destination", dest,
		"--trackdb", "",
	}, "refuse an explicitly empty trackDb file name", true)
}

func TestCliGenerateBadLayout(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	src := filepath.Join(t.TempDir(), "bad")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "A", "B"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "A", "B", "file.bw"), []byte(rand.String(16)), 0644))
	dest := filepath.Join(t.TempDir(), "hub-"+rand.LetterString(8))

	runCmd(t, []string{
		"generate", src,
		"--destination", dest,
	}, "refuse a tree with an unclassified subdirectory", true)

	// a structural failure aborts before anything is published
	require.NoFileExists(t, filepath.Join(dest, "trackDb.txt"))
}

func TestCliGenerateWithConfigFile(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	cfgFile := filepath.Join(t.TempDir(), "hubgen.yaml")
	t.Setenv(envConfigLocation, cfgFile)

	runCmd(t, []string{
		"config", "set",
		"--trackdb", "trackDb.chip.txt",
		"--url-prefix", "http://hubs.example.org/hg38/",
	}, "write the cli config file", false)

	payload, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	var written CLIConfig
	require.NoError(t, yaml.Unmarshal(payload, &written))
	assert.Equal(t, "trackDb.chip.txt", written.TrackDb)
	assert.Equal(t, "http://hubs.example.org/hg38/", written.URLPrefix)

	src := makeHubTree(t)
	dest := filepath.Join(t.TempDir(), "hub-"+rand.LetterString(8))

	runCmd(t, []string{
		"generate", src,
		"--destination", dest,
	}, "generate picking the trackDb name and url prefix from the config file", false)

	payload, err = os.ReadFile(filepath.Join(dest, "trackDb.chip.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "bigDataUrl http://hubs.example.org/hg38/genes.bb")
}

func TestCliTree(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	src := makeHubTree(t)

	var buf strings.Builder
	logStdOut = func(format string, args ...interface{}) (int, error) {
		return fmt.Fprintf(&buf, format, args...)
	}
	defer func() { logStdOut = fmt.Printf }()

	runCmd(t, []string{"tree", src}, "print the resolved tree", false)

	output := buf.String()
	assert.Contains(t, output, "containers:\n- hg38\n")
	assert.Contains(t, output, "H3K4me1.multiwig")
	assert.Contains(t, output, "track_1")

	// inspection leaves the input tree untouched
	_, err := os.Stat(filepath.Join(src, "container_config.used"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(src, "genes.composite", "container_config.used"))
	require.True(t, os.IsNotExist(err))
}

func TestCliList(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	src := makeHubTree(t)

	runCmd(t, []string{"list", src}, "list the resolved tracks", false)
}

func TestCliRules(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, []string{"rules"}, "print the rule tables", false)
}

func TestCliVersion(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	var buf strings.Builder
	logStdOut = func(format string, args ...interface{}) (int, error) {
		return fmt.Fprintf(&buf, format, args...)
	}
	defer func() { logStdOut = fmt.Printf }()

	runCmd(t, []string{"version"}, "print version info", false)

	assert.Contains(t, buf.String(), "Version: dev")
}

func TestCliUsage(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	target := t.TempDir()
	runCmd(t, []string{"usage", "--target-dir", target}, "generate markdown usage docs", false)

	for _, page := range []string{"hubgen.md", "hubgen_generate.md", "hubgen_tree.md", "hubgen_rules.md"} {
		_, err := os.Stat(filepath.Join(target, page))
		require.NoError(t, err, "expected doc page %s", page)
	}
}

func TestCliCompletion(t *testing.T) {
	cleanup := setupTests(t)
	defer cleanup()

	runCmd(t, []string{"completion", bash}, "generate bash completions", false)
	runCmd(t, []string{"completion"}, "require a shell argument", true)
}
