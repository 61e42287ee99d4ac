// Command rldemo exercises the rl bindings: it opens a window and draws a
// few frames, or builds and exports images without a window.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/rl"
	"github.com/gogpu/rl/native"
	_ "github.com/gogpu/rl/native/fake"
	_ "github.com/gogpu/rl/native/raylib"
)

var rootCmd = &cobra.Command{
	Use:          "rldemo",
	Short:        "rldemo exercises the rl raylib bindings",
	Long:         "rldemo exercises the rl raylib bindings",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			rl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return selectBackend(backend)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debug   bool
	verbose bool
	backend string
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, `verbose`, `v`, false, `log resource lifecycle`)
	rootCmd.PersistentFlags().StringVar(&backend, `backend`, ``, `native backend (`+fmt.Sprint(native.Available())+`)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func selectBackend(name string) error {
	if name == `` {
		return nil
	}
	l := native.Get(name)
	if l == nil {
		return errors.Errorf("unknown backend %q, have %v", name, native.Available())
	}
	rl.SetLibrary(l)
	return nil
}

func run(fn func() error) {
	if fn == nil {
		log.Fatal("rldemo: nil command")
	}
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Println(stackFramer.ErrorStack())
		}
		log.Fatal(err)
	}
}
