package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const (
	EnvCacheDir    = "YCURVE_CACHE_DIR"
	EnvCachePeriod = "YCURVE_CACHE_PERIOD"
	EnvYears       = "YCURVE_YEARS"
	EnvVerbose     = "YCURVE_VERBOSE"
)

// extensionEnv returns the global flags as environment variables for an extension.
func extensionEnv() []string {
	env := os.Environ()
	if key := APIKey(); key != "" {
		env = append(env, APIKeyEnv+"="+key)
	}
	return append(env,
		EnvCacheDir+"="+*cacheDir,
		EnvCachePeriod+"="+*cachePeriod,
		EnvYears+"="+strconv.Itoa(*years),
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)
}

// RunExtension attempts to find and execute an external ycurve-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "ycurve-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debugf("external command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
