package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/simplecfg/simplecfg"
)

type shellCmd struct {
	Grammar string `short:"g" type:"existingfile" env:"SIMPLECFG_GRAMMAR" help:"Grammar file to start with."`
}

func (c *shellCmd) Run(env *environment) error {
	s := &shell{env: env, lines: bufio.NewScanner(env.stdin)}
	if c.Grammar != "" {
		g, err := loadGrammarFile(c.Grammar)
		if err != nil {
			return err
		}
		s.grammar = g
	}
	return s.run()
}

// shell is the menu driven loop: load a grammar, check strings against it.
type shell struct {
	env     *environment
	lines   *bufio.Scanner
	grammar *simplecfg.Grammar
}

func (s *shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.env.stdout, format, args...)
}

// prompt and read a line, returning false at end of input.
func (s *shell) prompt(format string, args ...interface{}) (string, bool) {
	s.printf(format, args...)
	if !s.lines.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.lines.Text()), true
}

func (s *shell) run() error {
	for {
		choice, ok := s.prompt("1- Input Grammar\n2- Check String\n3- Show Grammar\n4- Exit\nEnter your choice: ")
		if !ok {
			return s.lines.Err()
		}
		switch choice {
		case "1":
			if !s.inputGrammar() {
				return s.lines.Err()
			}
		case "2":
			if !s.checkString() {
				return s.lines.Err()
			}
		case "3":
			s.showGrammar()
		case "4":
			return nil
		default:
			s.printf("Invalid choice. Try again.\n")
		}
	}
}

// inputGrammar reads rule sets until one is accepted.
//
// The current grammar is kept until then.
func (s *shell) inputGrammar() bool {
	for {
		rules, ok := s.readRules()
		if !ok {
			return false
		}
		g, err := simplecfg.Load(rules...)
		if err != nil {
			s.printf("The grammar isn't simple (%s). Try again.\n", err)
			continue
		}
		s.grammar = g
		s.printf("Grammar accepted as simple.\n")
		return true
	}
}

func (s *shell) readRules() ([]simplecfg.Rule, bool) {
	s.printf("Enter grammar rules (enter an empty line to stop):\n")
	rules := []simplecfg.Rule{}
	for {
		name, ok := s.prompt("Non-terminal: ")
		if !ok {
			return nil, false
		}
		if name == "" {
			return rules, true
		}
		rule := simplecfg.Rule{Name: name}
		for {
			production, ok := s.prompt("Enter production for %s (or empty to stop): ", name)
			if !ok {
				return nil, false
			}
			if production == "" {
				break
			}
			rule.Productions = append(rule.Productions, production)
		}
		rules = append(rules, rule)
	}
}

func (s *shell) checkString() bool {
	line, ok := s.prompt("Enter the string to be checked: ")
	if !ok {
		return false
	}
	// Only the first word is checked.
	input := ""
	if fields := strings.Fields(line); len(fields) > 0 {
		input = fields[0]
	}
	result := s.env.match(s.grammar, input)
	if !result.Accepted {
		s.printf("The string is Rejected (%s).\n", result.Reason)
		return true
	}
	s.printf("Parse Tree:\n%sThe string is Accepted.\n", result)
	return true
}

func (s *shell) showGrammar() {
	if s.grammar == nil {
		s.printf("No grammar loaded.\n")
		return
	}
	s.printf("Current Grammar:\n%s", s.grammar)
}
