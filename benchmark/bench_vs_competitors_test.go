package benchmark_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-dispatch/dispatch"
)

// Benchmark simple CLI with basic flags
// All three route to a command action with int and bool flags for fair comparison

func BenchmarkSimpleCLI_GoDispatch(b *testing.B) {
	app := dispatch.New("bench", "benchmark app")
	app.Command("run", "Run benchmark").
		IntOption("port", "Server port").Default(8080).Back().
		BoolOption("verbose", "Verbose output").Back().
		Action(func(_ *dispatch.Context) error { return nil })

	args := []string{"bench", "run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(args)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().IntP("port", "p", 8080, "Server port")
		runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "run", "--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "run",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Server port"},
						&cli.BoolFlag{Name: "verbose", Usage: "Verbose output"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark nested subcommands
// Tests deep command routing (realistic for complex tools)

func BenchmarkNestedCommands_GoDispatch(b *testing.B) {
	app := dispatch.New("bench", "benchmark app")
	app.Command("server", "Server management").
		Command("start", "Start server").
		Action(func(_ *dispatch.Context) error { return nil })

	args := []string{"bench", "server", "start"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(args)
	}
}

func BenchmarkNestedCommands_Cobra(b *testing.B) {
	args := []string{"server", "start"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		serverCmd := &cobra.Command{Use: "server"}
		startCmd := &cobra.Command{
			Use: "start",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		serverCmd.AddCommand(startCmd)
		rootCmd.AddCommand(serverCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkNestedCommands_Urfave(b *testing.B) {
	args := []string{"bench", "server", "start"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "server",
					Subcommands: []*cli.Command{
						{
							Name:   "start",
							Action: func(_ *cli.Context) error { return nil },
						},
					},
				},
			},
		}
		_ = app.Run(args)
	}
}

// Benchmark typed option coercion
// Exercises int and float parsing on the hot path

func BenchmarkTypedOptions_GoDispatch(b *testing.B) {
	app := dispatch.New("bench", "benchmark app")
	app.Command("run", "Run benchmark").
		IntOption("port", "Port").Default(8080).Back().
		FloatOption("ratio", "Ratio").Default(1.0).Back().
		StringOption("host", "Host").Default("localhost").Back().
		Action(func(_ *dispatch.Context) error { return nil })

	args := []string{"bench", "run", "--port", "9000", "--ratio", "0.75", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = app.RunWithArgs(args)
	}
}

func BenchmarkTypedOptions_Cobra(b *testing.B) {
	args := []string{"run", "--port", "9000", "--ratio", "0.75", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		runCmd := &cobra.Command{
			Use: "run",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		runCmd.Flags().IntP("port", "p", 8080, "Port")
		runCmd.Flags().Float64("ratio", 1.0, "Ratio")
		runCmd.Flags().String("host", "localhost", "Host")
		rootCmd.AddCommand(runCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkTypedOptions_Urfave(b *testing.B) {
	args := []string{"bench", "run", "--port", "9000", "--ratio", "0.75", "--host", "0.0.0.0"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "run",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "port", Value: 8080, Usage: "Port"},
						&cli.Float64Flag{Name: "ratio", Value: 1.0, Usage: "Ratio"},
						&cli.StringFlag{Name: "host", Value: "localhost", Usage: "Host"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}
