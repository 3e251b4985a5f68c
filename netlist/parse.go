package netlist

import "strings"

// Command is one parsed component placement line:
// <kind> ["name"] <terminal>* (<key>=<value>)*.
type Command struct {
	Kind       string
	Name       string // empty if unnamed
	Terminals  []string
	Parameters map[string]string // raw value tokens, parsed by Build
	Line       int               // 1-based source line, for error context
}

// Parse scans netlist source into a sequence of component commands.
// Blank lines and lines beginning with "--" are dropped; every other
// line must match the component-command grammar or Parse returns
// ErrMalformedLine naming the offending line.
func Parse(source string) ([]Command, error) {
	lines := strings.Split(source, "\n")
	commands := make([]Command, 0, len(lines))

	for i, raw := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}

		cmd, err := parseComponentCommand(trimmed, lineNo)
		if err != nil {
			return nil, err
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

func parseComponentCommand(line string, lineNo int) (Command, error) {
	sc := newLineScanner(line)

	kind, ok := sc.parseIdentifier()
	if !ok {
		return Command{}, netlistErrorf("Parse", lineNo, ErrMalformedLine)
	}

	sc.skipSpace()

	name := ""
	if r, ok := sc.peek(); ok && r == '"' {
		n, ok := sc.parseQuotedString()
		if !ok {
			return Command{}, netlistErrorf("Parse", lineNo, ErrMalformedLine)
		}
		name = n
		sc.skipSpace()
	}

	var terminals []string
	params := map[string]string{}
	parsingParams := false

	for {
		sc.skipSpace()
		if sc.atEnd() {
			break
		}

		token, ok := sc.parseIdentifier()
		if !ok {
			return Command{}, netlistErrorf("Parse", lineNo, ErrMalformedLine)
		}

		if sc.expectChar('=') {
			parsingParams = true

			value, ok := sc.parseToken()
			if !ok {
				return Command{}, netlistErrorf("Parse", lineNo, ErrMalformedLine)
			}

			params[token] = value

			continue
		}

		if parsingParams {
			// A bare token after parameters began is out of grammar:
			// terminals must all precede key=value pairs.
			return Command{}, netlistErrorf("Parse", lineNo, ErrMalformedLine)
		}

		terminals = append(terminals, token)
	}

	return Command{
		Kind:       kind,
		Name:       name,
		Terminals:  terminals,
		Parameters: params,
		Line:       lineNo,
	}, nil
}
