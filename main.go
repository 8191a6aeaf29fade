package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumant1122/motdyn/internal/config"
	"github.com/sumant1122/motdyn/internal/hook"
	"github.com/sumant1122/motdyn/internal/report"
	"github.com/sumant1122/motdyn/internal/sysinfo"
	"github.com/sumant1122/motdyn/internal/ui"
)

const version = "0.1.0"

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "verbose", false, "show more detailed info when printing")
	flag.BoolVar(&verbose, "v", false, "show more detailed info (shorthand)")
	flag.Usage = usage
	flag.Parse()

	switch flag.Arg(0) {
	case "install":
		if err := hook.Install(hook.DefaultProfileDir); err != nil {
			fmt.Fprintf(os.Stderr, "Install failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Install successful!")

	case "uninstall":
		if err := hook.Uninstall(hook.DefaultProfileDir); err != nil {
			fmt.Fprintf(os.Stderr, "Uninstall failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Uninstall successful!")

	case "status":
		installed, path := hook.Status(hook.DefaultProfileDir)
		if installed {
			fmt.Printf("The system IS installed with motdyn script at %s\n", path)
		} else {
			fmt.Printf("The system is NOT installed with motdyn (no %s).\n", path)
		}

	case "watch":
		m := ui.NewModel(newReport(), verbose)
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("motdyn %s\n", version)

	case "":
		newReport().Render(os.Stdout, verbose)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}
}

func newReport() *report.Report {
	cfg := config.LoadMerged(config.SystemPath, config.UserPath, os.Getenv)
	return report.New(sysinfo.New(), cfg)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: motdyn [flags] [command]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  install     install the login hook under %s\n", hook.DefaultProfileDir)
	fmt.Fprintf(os.Stderr, "  uninstall   remove the login hook\n")
	fmt.Fprintf(os.Stderr, "  status      report whether the login hook is installed\n")
	fmt.Fprintf(os.Stderr, "  watch       live view of the report, refreshed periodically\n")
	fmt.Fprintf(os.Stderr, "  version     print version and exit\n\n")
	fmt.Fprintf(os.Stderr, "Without a command, motdyn prints the report once.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
