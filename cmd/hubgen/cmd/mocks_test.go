package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/oneconcern/hubgen/pkg/dlogger"
	"github.com/oneconcern/hubgen/pkg/hub"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func NewExitMocks() *ExitMocks {
	exitMocks := ExitMocks{
		exitStatuses: make([]int, 0),
	}
	return &exitMocks
}

// https://github.com/stretchr/testify/issues/610
func MakeFatalfMock(m *ExitMocks) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		m.Fatalf(format, v...)
	}
}

func MakeFatallnMock(m *ExitMocks) func(...interface{}) {
	return func(v ...interface{}) {
		m.Fatalln(v...)
	}
}

func MakeExitMock(m *ExitMocks) func(int) {
	return func(code int) {
		m.Exit(code)
	}
}

var exitMocks *ExitMocks

func setupTests(t *testing.T) func() {
	// viper keeps any previously read config file across executions
	viper.Reset()
	exitMocks = NewExitMocks()
	logFatalf = MakeFatalfMock(exitMocks)
	logFatalln = MakeFatallnMock(exitMocks)
	osExit = MakeExitMock(exitMocks)
	cleanup := func() {
		logFatalf = log.Fatalf
		logFatalln = log.Fatalln
		osExit = os.Exit
	}
	return cleanup
}

// pflag keeps per-flag Changed state across executions
func resetFlagChanged(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	c.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, sub := range c.Commands() {
		resetFlagChanged(sub)
	}
}

func runCmd(t *testing.T, cmd []string, intentMsg string, expectError bool) {
	fatalCallsBefore := exitMocks.fatalCalls()

	hubgenFlags = flagsT{}
	// restore the flag defaults clobbered by the reset
	hubgenFlags.hub.StartIndex = hub.DefaultStartIndex
	hubgenFlags.root.logLevel = dlogger.LogLevelInfo
	hubgenFlags.doc.docTarget = "."
	resetFlagChanged(rootCmd)

	rootCmd.SetArgs(cmd)
	require.NoError(t, rootCmd.Execute(), "error executing '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	if expectError {
		require.Equal(t, fatalCallsBefore+1, exitMocks.fatalCalls(),
			"ran '"+strings.Join(cmd, " ")+"' expecting error and didn't see one in mocks : "+intentMsg)
	} else {
		require.Equal(t, fatalCallsBefore, exitMocks.fatalCalls(),
			"unexpected error in mocks on '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	}
}
