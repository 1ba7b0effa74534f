package emit

import (
	"bytes"
	"fmt"
	"os/exec"
)

// GeneratorPair names the external flex/bison binaries InvokeGenerators
// shells out to. The zero value resolves both from $PATH; a caller
// wanting a specific toolchain (or a vendored one) overrides either
// field with an absolute path.
type GeneratorPair struct {
	Flex  string
	Bison string
}

// DefaultGenerators is the GeneratorPair InvokeGenerators falls back to
// when none is given: plain "flex"/"bison", resolved from $PATH.
var DefaultGenerators = GeneratorPair{Flex: "flex", Bison: "bison"}

func (p GeneratorPair) withDefaults() GeneratorPair {
	if p.Flex == "" {
		p.Flex = DefaultGenerators.Flex
	}
	if p.Bison == "" {
		p.Bison = DefaultGenerators.Bison
	}
	return p
}

// InvokeGenerators runs flex over "<dir>/<langKey>.l" and bison over
// "<dir>/<langKey>.y", the two rendered files Emit writes ahead of this
// call, producing the scanner/parser C++ sources and bison's .tab.h
// header the generated lexer includes.
func InvokeGenerators(dir, langKey string, pair GeneratorPair) error {
	pair = pair.withDefaults()

	lexFile := dir + "/" + langKey + ".l"
	lexOutput := dir + "/" + langKey + ".yy.cpp"
	if err := runGenerator(pair.Flex, "-o", lexOutput, lexFile); err != nil {
		return fmt.Errorf("flex: %w", err)
	}

	grammarFile := dir + "/" + langKey + ".y"
	grammarOutput := dir + "/" + langKey + ".tab.cpp"
	grammarHeader := dir + "/" + langKey + ".tab.h"
	if err := runGenerator(pair.Bison, "-o", grammarOutput, "--defines="+grammarHeader, grammarFile); err != nil {
		return fmt.Errorf("bison: %w", err)
	}
	return nil
}

func runGenerator(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w: %s", name, args, err, stderr.String())
	}
	return nil
}
