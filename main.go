package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/YanLien/SaltPass/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate", "gen":
		runGenerate(os.Args[2:])
	case "add":
		runAdd(os.Args[2:])
	case "ls", "list":
		runLs(os.Args[2:])
	case "rm":
		runRm(os.Args[2:])
	case "export":
		runExport(os.Args[2:])
	case "keyring":
		runKeyring(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func storeFlags(fs *flag.FlagSet) *cmd.StoreOptions {
	opts := &cmd.StoreOptions{}
	fs.StringVar(&opts.Format, "format", "json", "Storage format: json or toml")
	fs.BoolVar(&opts.Encrypted, "encrypted", false, "Use the encrypted store")
	fs.StringVar(&opts.Path, "path", "", "Override the store file path")
	return opts
}

func parseOrExit(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	opts := storeFlags(fs)
	feature := fs.String("feature", "", "Derive for this identifier directly, without a catalog entry")
	algo := fs.String("algo", "", "Derivation algorithm (default HmacSha256)")
	length := fs.Int("length", cmd.DefaultLength, "Password length (12-64)")
	parseOrExit(fs, args)

	index := -1
	if fs.NArg() > 0 {
		i, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid index %q\n", fs.Arg(0))
			os.Exit(1)
		}
		index = i
	}

	cmd.Generate(*opts, index, *feature, *algo, *length)
}

func runAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	opts := storeFlags(fs)
	name := fs.String("name", "", "Display name (e.g., GitHub)")
	feature := fs.String("feature", "", "Feature identifier (e.g., github.com)")
	algo := fs.String("algo", "", "Derivation algorithm (default HmacSha256)")
	hint := fs.String("hint", "", "Optional hint")
	parseOrExit(fs, args)

	if *name == "" || *feature == "" {
		fmt.Fprintln(os.Stderr, "Error: --name and --feature are required")
		os.Exit(1)
	}

	cmd.Add(*opts, *name, *feature, *algo, *hint)
}

func runLs(args []string) {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	opts := storeFlags(fs)
	parseOrExit(fs, args)

	cmd.List(*opts)
}

func runRm(args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	opts := storeFlags(fs)
	parseOrExit(fs, args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: saltpass rm [flags] <index>")
		os.Exit(1)
	}
	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid index %q\n", fs.Arg(0))
		os.Exit(1)
	}

	cmd.Remove(*opts, index)
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	opts := storeFlags(fs)
	parseOrExit(fs, args)

	cmd.Export(*opts)
}

func runKeyring(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: saltpass keyring <save|delete|status> [flags]")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("keyring", flag.ExitOnError)
	opts := storeFlags(fs)
	parseOrExit(fs, args[1:])

	switch args[0] {
	case "save":
		cmd.KeyringSave(*opts)
	case "delete":
		cmd.KeyringDelete(*opts)
	case "status":
		cmd.KeyringStatus(*opts)
	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring action: %s\n", args[0])
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("saltpass - deterministic password generator")
	fmt.Println()
	fmt.Println("Passwords are derived from a master salt you remember and a feature")
	fmt.Println("identifier; nothing secret is ever written to disk.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  saltpass <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate    Derive the password for a stored feature or identifier")
	fmt.Println("  add         Store a new feature in the catalog")
	fmt.Println("  ls, list    List stored features")
	fmt.Println("  rm          Remove a feature by index")
	fmt.Println("  export      Print the catalog as TOML (decrypting if needed)")
	fmt.Println("  keyring     Cache the store password in the OS keyring")
	fmt.Println("  help        Show this help")
	fmt.Println()
	fmt.Println("Common flags:")
	fmt.Println("  --format json|toml   Storage format (default json)")
	fmt.Println("  --encrypted          Use the AES-256-GCM encrypted store")
	fmt.Println("  --path <file>        Override the store file path")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  saltpass add --name GitHub --feature github.com")
	fmt.Println("  saltpass ls")
	fmt.Println("  saltpass generate 0 --length 20")
	fmt.Println("  saltpass generate --feature github.com --algo Argon2id")
	fmt.Println("  saltpass export --encrypted --format toml")
}
