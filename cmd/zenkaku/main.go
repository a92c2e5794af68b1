// Command zenkaku converts ASCII digits in text to decorative Unicode
// representations, or back.
//
//	zenkaku -type circle 2024        # ②⓪②④
//	zenkaku -type circle -reverse ②⓪②④
//	echo "room 101" | zenkaku -type chinese
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/naminx/zenkaku"
	_ "github.com/naminx/zenkaku/chinese"
	_ "github.com/naminx/zenkaku/circle"
	_ "github.com/naminx/zenkaku/fullwidth"
	_ "github.com/naminx/zenkaku/roman"
	_ "github.com/naminx/zenkaku/thai"
)

func main() {
	var (
		typeName = flag.String("type", "fullwidth", "Conversion type (see -list)")
		reverse  = flag.Bool("reverse", false, "Convert Unicode digits back to ASCII")
		list     = flag.Bool("list", false, "List available conversion types and exit")
		variants = flag.String("variants", "", "YAML file of additional variant definitions")
		debug    = flag.Bool("debug", false, "Log per-record processing to stderr")
	)
	flag.Parse()

	if err := run(*typeName, *reverse, *list, *variants, *debug, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeName string, reverse, list bool, variantFile string, debug bool, args []string) error {
	logger := zap.NewNop()
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer func() { _ = l.Sync() }()
		logger = l
	}

	if variantFile != "" {
		if err := zenkaku.LoadVariantFile(variantFile); err != nil {
			return fmt.Errorf("load variants: %w", err)
		}
		logger.Debug("loaded variant file", zap.String("path", variantFile))
	}

	if list {
		for _, name := range zenkaku.Names() {
			fmt.Println(name)
		}
		return nil
	}

	codec, err := zenkaku.Lookup(typeName)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(zenkaku.Names(), ", "))
	}

	convert := codec.Encode
	if reverse {
		convert = codec.Decode
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	process := func(record string) error {
		result := convert(record)
		logger.Debug("processed record",
			zap.String("variant", codec.Name()),
			zap.Bool("reverse", reverse),
			zap.Int("in_bytes", len(record)),
			zap.Int("out_bytes", len(result)),
		)
		_, err := fmt.Fprintln(out, result)
		return err
	}

	// Positional arguments are records; with none, read stdin.
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if err := process(scanner.Text()); err != nil {
				return err
			}
		}
		return scanner.Err()
	}
	for _, arg := range args {
		if err := process(arg); err != nil {
			return err
		}
	}
	return nil
}
