package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/types"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scribe-admin",
	Short: "Offline administration for Scribe store files",
	Long: `scribe-admin inspects, verifies and converts the store files Scribe
replicas persist their state to. It operates on the files directly and
must not be pointed at a store a running replica is using.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Scribe admin version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(convertCmd)
}

// resolveBackend picks the store backend for path: an explicit flag value
// wins, otherwise the file extension decides.
func resolveBackend(path, flagValue string) (types.StoreBackend, error) {
	switch flagValue {
	case "":
	case string(types.BackendFile):
		return types.BackendFile, nil
	case string(types.BackendBolt):
		return types.BackendBolt, nil
	default:
		return "", fmt.Errorf("invalid backend %q (expected %q or %q)",
			flagValue, types.BackendFile, types.BackendBolt)
	}

	switch filepath.Ext(path) {
	case ".json":
		return types.BackendFile, nil
	case ".db", ".bolt":
		return types.BackendBolt, nil
	}
	return "", fmt.Errorf("cannot infer backend from %q: pass --backend", path)
}

// openExisting opens the store at path, refusing paths that do not exist.
// The file backend treats a missing file as an empty store, which is right
// for a starting replica but masks typos in an admin tool.
func openExisting(path string, backend types.StoreBackend) (storage.Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("store not found at %s: %v", path, err)
	}
	store, err := storage.New(backend, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %v", err)
	}
	return store, nil
}
