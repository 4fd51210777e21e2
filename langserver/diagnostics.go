package langserver

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/parsec/calc"
)

// Diagnostics parses every line of an expression document and returns one
// diagnostic per line that fails to parse. Blank lines and lines starting
// with '#' are ignored. The diagnostic spans the whole line; the engine
// does not track positions, so the failing suffix is reported in the
// message instead.
func Diagnostics(content string) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	severity := protocol.DiagnosticSeverityError
	source := lsName

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		_, err := calc.Eval(line)
		if err == nil {
			continue
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(i), Character: 0},
				End:   protocol.Position{Line: protocol.UInteger(i), Character: protocol.UInteger(len(line))},
			},
			Severity: &severity,
			Source:   &source,
			Message:  err.Error(),
		})
	}

	return diagnostics
}
