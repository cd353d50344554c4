package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/ucdgen/codegen"
	verr "github.com/nihei9/ucdgen/error"
	"github.com/nihei9/ucdgen/ucd"
	"github.com/spf13/cobra"
)

func Execute() error {
	err := generateCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

var generateFlags = struct {
	generatedHeaderPath         *string
	generatedImplementationPath *string
	unicodeDataPath             *string
	specialCasingPath           *string
	propListPath                *string
	derivedCorePropPath         *string
	derivedBinaryPropPath       *string
	propAliasPath               *string
	propValueAliasPath          *string
	scriptsPath                 *string
	scriptExtensionsPath        *string
	wordBreakPath               *string
	emojiDataPath               *string
}{}

var generateCmd = &cobra.Command{
	Use:   "ucdgen",
	Short: "Generate Unicode property tables from the UCD data files",
	Long: `ucdgen compiles the data files of the Unicode Character Database (UCD) into
a pair of source files holding statically-initialized per-code-point property
tables along with lookup functions over them.`,
	RunE:          runGenerate,
	SilenceErrors: true,
}

func init() {
	flags := generateCmd.Flags()
	generateFlags.generatedHeaderPath = flags.StringP("generated-header-path", "g", "", "path to the header file to generate")
	generateFlags.generatedImplementationPath = flags.StringP("generated-implementation-path", "c", "", "path to the implementation file to generate")
	generateFlags.unicodeDataPath = flags.StringP("unicode-data-path", "u", "", "path to UnicodeData.txt")
	generateFlags.specialCasingPath = flags.StringP("special-casing-path", "s", "", "path to SpecialCasing.txt")
	generateFlags.propListPath = flags.StringP("prop-list-path", "p", "", "path to PropList.txt")
	generateFlags.derivedCorePropPath = flags.StringP("derived-core-prop-path", "d", "", "path to DerivedCoreProperties.txt")
	generateFlags.derivedBinaryPropPath = flags.StringP("derived-binary-prop-path", "b", "", "path to DerivedBinaryProperties.txt")
	generateFlags.propAliasPath = flags.StringP("prop-alias-path", "a", "", "path to PropertyAliases.txt")
	generateFlags.propValueAliasPath = flags.StringP("prop-value-alias-path", "v", "", "path to PropertyValueAliases.txt")
	generateFlags.scriptsPath = flags.StringP("scripts-path", "r", "", "path to Scripts.txt")
	generateFlags.scriptExtensionsPath = flags.StringP("script-extensions-path", "x", "", "path to ScriptExtensions.txt")
	generateFlags.wordBreakPath = flags.StringP("word-break-path", "w", "", "path to WordBreakProperty.txt")
	generateFlags.emojiDataPath = flags.StringP("emoji-data-path", "e", "", "path to emoji-data.txt")
	for _, flag := range []string{
		"generated-header-path",
		"generated-implementation-path",
		"unicode-data-path",
		"special-casing-path",
		"prop-list-path",
		"derived-core-prop-path",
		"derived-binary-prop-path",
		"prop-alias-path",
		"prop-value-alias-path",
		"scripts-path",
		"script-extensions-path",
		"word-break-path",
		"emoji-data-path",
	} {
		cobra.MarkFlagRequired(flags, flag)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// A missing flag is a usage error; anything past this point is not.
	cmd.SilenceUsage = true

	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	open := func(path string, flag int) (*os.File, error) {
		f, err := os.OpenFile(path, flag, 0644)
		if err != nil {
			return nil, fmt.Errorf("Cannot open %v: %w", path, err)
		}
		files = append(files, f)
		return f, nil
	}

	headerFile, err := open(*generateFlags.generatedHeaderPath, os.O_RDWR|os.O_CREATE)
	if err != nil {
		return err
	}
	implementationFile, err := open(*generateFlags.generatedImplementationPath, os.O_RDWR|os.O_CREATE)
	if err != nil {
		return err
	}
	unicodeDataFile, err := open(*generateFlags.unicodeDataPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	specialCasingFile, err := open(*generateFlags.specialCasingPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	propListFile, err := open(*generateFlags.propListPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	derivedCorePropFile, err := open(*generateFlags.derivedCorePropPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	derivedBinaryPropFile, err := open(*generateFlags.derivedBinaryPropPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	propAliasFile, err := open(*generateFlags.propAliasPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	propValueAliasFile, err := open(*generateFlags.propValueAliasPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	scriptsFile, err := open(*generateFlags.scriptsPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	scriptExtensionsFile, err := open(*generateFlags.scriptExtensionsPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	wordBreakFile, err := open(*generateFlags.wordBreakPath, os.O_RDONLY)
	if err != nil {
		return err
	}
	emojiDataFile, err := open(*generateFlags.emojiDataPath, os.O_RDONLY)
	if err != nil {
		return err
	}

	db := ucd.NewUCD()

	// The order matters: the property lists must be complete before
	// UnicodeData.txt is joined against them, and the value aliases consult
	// the general categories and scripts discovered by the earlier passes.
	parse := func(f *os.File, parseFn func(r io.Reader) error) error {
		err := parseFn(f)
		var perr *verr.ParseError
		if errors.As(err, &perr) {
			perr.FilePath = f.Name()
			perr.SourceName = f.Name()
		}
		return err
	}

	err = parse(specialCasingFile, func(r io.Reader) error {
		return ucd.ParseSpecialCasing(r, db)
	})
	if err != nil {
		return err
	}
	for _, f := range []*os.File{propListFile, derivedCorePropFile, derivedBinaryPropFile, emojiDataFile} {
		err = parse(f, func(r io.Reader) error {
			return ucd.ParsePropList(r, db.PropList)
		})
		if err != nil {
			return err
		}
	}
	err = parse(propAliasFile, func(r io.Reader) error {
		return ucd.ParsePropAliases(r, db)
	})
	if err != nil {
		return err
	}
	err = parse(scriptsFile, func(r io.Reader) error {
		return ucd.ParsePropList(r, db.ScriptList)
	})
	if err != nil {
		return err
	}
	err = parse(scriptExtensionsFile, func(r io.Reader) error {
		return ucd.ParseMultiValuePropList(r, db.ScriptExtensions)
	})
	if err != nil {
		return err
	}
	err = parse(wordBreakFile, func(r io.Reader) error {
		return ucd.ParsePropList(r, db.WordBreakPropList)
	})
	if err != nil {
		return err
	}
	err = parse(unicodeDataFile, func(r io.Reader) error {
		return ucd.ParseUnicodeData(r, db)
	})
	if err != nil {
		return err
	}
	err = parse(propValueAliasFile, func(r io.Reader) error {
		aliases, err := ucd.ParseValueAliases(r, "gc", db.GeneralCategories, db.GeneralCategoryUnions, true)
		if err != nil {
			return err
		}
		db.GeneralCategoryAliases = aliases
		return nil
	})
	if err != nil {
		return err
	}
	if _, err := propValueAliasFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("Cannot rewind %v: %w", propValueAliasFile.Name(), err)
	}
	err = parse(propValueAliasFile, func(r io.Reader) error {
		aliases, err := ucd.ParseValueAliases(r, "sc", db.ScriptList.Names(), nil, false)
		if err != nil {
			return err
		}
		db.ScriptAliases = aliases
		return nil
	})
	if err != nil {
		return err
	}

	err = codegen.WriteFileIfDifferent(headerFile, codegen.GenHeader(db))
	if err != nil {
		return err
	}
	return codegen.WriteFileIfDifferent(implementationFile, codegen.GenImplementation(db))
}
