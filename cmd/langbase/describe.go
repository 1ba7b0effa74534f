package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sort"
	"strings"
	"text/template"

	"github.com/goodcodedev/langbase/lang"
	"github.com/goodcodedev/langbase/validate"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print a language description's built model in readable format",
		Example: `  langbase describe calc.lang`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) (retErr error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, ok := v.(error)
		if !ok {
			retErr = fmt.Errorf("an unexpected error occurred: %v", v)
		} else {
			retErr = err
		}
		fmt.Fprintf(os.Stderr, "%v:\n%v", retErr, string(debug.Stack()))
	}()

	m, langKey, err := loadModel(args[0])
	if err != nil {
		return err
	}

	return writeDescription(os.Stdout, m, langKey)
}

type classView struct {
	Name     string
	Extends  string
	Members  []string
	CtorArgs [][]string
}

type keyView struct {
	Key     string
	Class   string
	Kind    string
	Reached bool
}

type describeView struct {
	LangKey  string
	StartKey string
	Classes  []classView
	Keys     []keyView
	Tokens   []string
}

func buildDescribeView(m *lang.Model, langKey string) describeView {
	view := describeView{LangKey: langKey, StartKey: m.StartKey}

	report := validate.Grammar(m)
	unreachable := map[string]bool{}
	for _, k := range report.Keys {
		unreachable[k] = true
	}

	classNames := make([]string, 0, len(m.Classes))
	for name := range m.Classes {
		classNames = append(classNames, name)
	}
	sort.Strings(classNames)
	for _, name := range classNames {
		cls := m.Classes[name]
		cv := classView{Name: name}
		if cls.Extends != nil {
			cv.Extends = cls.Extends.Identifier
		}
		for _, k := range cls.SortedMemberKeys() {
			mem := cls.Members[k]
			cv.Members = append(cv.Members, fmt.Sprintf("%s %s", mem.Part.GrammarType(), mem.Key))
		}
		for _, ctor := range cls.Constructors {
			cv.CtorArgs = append(cv.CtorArgs, ctor.Args)
		}
		view.Classes = append(view.Classes, cv)
	}

	addKeys := func(kind string, m map[string]string) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			view.Keys = append(view.Keys, keyView{Key: k, Class: m[k], Kind: kind, Reached: !unreachable[k]})
		}
	}
	astClasses := map[string]string{}
	for k, ag := range m.AstGrammars {
		astClasses[k] = ag.AstClass
	}
	listClasses := map[string]string{}
	for k, lg := range m.ListGrammars {
		cls := lg.AstClass
		if lg.Shorthand && lg.ElemType != nil {
			cls = lg.ElemType.GrammarType()
		}
		listClasses[k] = cls
	}
	enumClasses := map[string]string{}
	for k, eg := range m.EnumGrammars {
		enumClasses[k] = eg.EnumKey
	}
	addKeys("ast", astClasses)
	addKeys("list", listClasses)
	addKeys("enum", enumClasses)

	tokens := make([]string, 0, len(m.Tokens))
	for k := range m.Tokens {
		if k == "WS" {
			continue
		}
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	view.Tokens = tokens

	return view
}

const describeTemplate = `# {{ .LangKey }}

Start key: {{ .StartKey }}

## Grammar keys

{{ range .Keys -}}
{{ printKey . }}
{{ end }}
## Tokens

{{ range .Tokens -}}
{{ . }}
{{ end }}
## Classes

{{ range .Classes -}}
{{ printClass . }}
{{ end }}`

func writeDescription(w io.Writer, m *lang.Model, langKey string) error {
	view := buildDescribeView(m, langKey)

	fns := template.FuncMap{
		"printKey": func(k keyView) string {
			status := "reachable"
			if !k.Reached {
				status = "UNREACHABLE"
			}
			return fmt.Sprintf("%-6s %-20s -> %-20s (%s)", k.Kind, k.Key, k.Class, status)
		},
		"printClass": func(c classView) string {
			var b strings.Builder
			if c.Extends != "" {
				fmt.Fprintf(&b, "%s extends %s\n", c.Name, c.Extends)
			} else {
				fmt.Fprintf(&b, "%s\n", c.Name)
			}
			for _, mem := range c.Members {
				fmt.Fprintf(&b, "    %s\n", mem)
			}
			for _, args := range c.CtorArgs {
				fmt.Fprintf(&b, "    ctor(%s)\n", strings.Join(args, ", "))
			}
			return b.String()
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(describeTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, view)
}
