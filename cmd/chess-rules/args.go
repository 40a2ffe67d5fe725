// args.go - Argument files (-A) and input file lists (-f)
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// splitArgsLine splits a line into arguments. Single or double quotes
// group words; the quotes themselves are dropped.
func splitArgsLine(line string) []string {
	var args []string
	var cur strings.Builder
	inArg := false
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}

// readListFile returns the non-empty, non-comment lines of path.
func readListFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// loadArgsFile reads command-line arguments from path, several per line.
func loadArgsFile(path string) ([]string, error) {
	lines, err := readListFile(path)
	if err != nil {
		return nil, err
	}
	var args []string
	for _, line := range lines {
		args = append(args, splitArgsLine(line)...)
	}
	return args, nil
}

// loadFileList reads input file names from path, one per line.
func loadFileList(path string) ([]string, error) {
	return readListFile(path)
}

// loadArgsFromFileIfSpecified looks for -A in os.Args before flag parsing
// and returns the arguments from that file, or nil.
func loadArgsFromFileIfSpecified() []string {
	args := os.Args[1:]
	for i, arg := range args {
		var path string
		switch {
		case arg == "-A" && i+1 < len(args):
			path = args[i+1]
		case strings.HasPrefix(arg, "-A="):
			path = strings.TrimPrefix(arg, "-A=")
		default:
			continue
		}

		fileArgs, err := loadArgsFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading argument file %s: %v\n", path, err)
			os.Exit(1)
		}
		return fileArgs
	}
	return nil
}
