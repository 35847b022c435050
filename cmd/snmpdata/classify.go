package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/AmariRules/integrations-core/snmp"
)

const classifyUsage = `snmpdata classify - Parse snmpwalk output and classify each varbind

Reads numeric snmpwalk output (snmpwalk -On) from a file or stdin, builds
a variable per line, and prints its OID, declared type, classification,
and coerced value.

Usage:
  snmpdata classify [options] [FILE]

Options:
  --format FMT   Output format: text, json (default: text)
  --kind KIND    Only show varbinds of this kind
                 (counter, gauge, opaque, oid, other, or a sentinel kind)
  -h, --help     Show help

Examples:
  snmpwalk -On -v2c -c public 192.0.2.1 | snmpdata classify
  snmpdata classify -format json walk.txt
  snmpdata classify -kind counter walk.txt
`

type classifiedVar struct {
	Oid      string `json:"oid"`
	Type     string `json:"type"`
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	ParseErr string `json:"parse_err,omitempty"`
}

func (c *cli) cmdClassify(args []string) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, classifyUsage) }

	format := fs.String("format", "text", "output format: text, json")
	kindFilter := fs.String("kind", "", "only show varbinds of this kind")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, classifyUsage)
		return exitOK
	}

	in := os.Stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			printError("cannot open input: %v", err)
			return exitError
		}
		defer f.Close()
		in = f
	}

	logger := c.setupLogger()
	variables, err := parseWalkOutput(in, logger)
	if err != nil {
		printError("cannot parse walk output: %v", err)
		return exitError
	}

	results := make([]classifiedVar, 0, len(variables))
	for _, variable := range variables {
		cv := classify(variable)
		if *kindFilter != "" && cv.Kind != *kindFilter {
			continue
		}
		results = append(results, cv)
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			printError("cannot encode output: %v", err)
			return exitError
		}
	case "text", "":
		for _, cv := range results {
			line := fmt.Sprintf("%s  %s  %s  %s", cv.Oid, cv.Type, cv.Kind, cv.Value)
			if cv.ParseErr != "" {
				line += "  (" + cv.ParseErr + ")"
			}
			fmt.Println(line)
		}
	default:
		printError("unknown format: %s", *format)
		return exitError
	}
	return exitOK
}

func classify(variable snmp.Variable) classifiedVar {
	cv := classifiedVar{
		Type: variable.Value.TypeName(),
		Kind: variable.Value.Kind().String(),
	}

	oid, err := variable.OID.Format()
	if err != nil {
		cv.Oid = fmt.Sprintf("%v", variable.OID.Raw())
		cv.ParseErr = err.Error()
	} else {
		cv.Oid = oid
	}

	// Prefer the numeric reading when the kind calls for one.
	switch variable.Value.Kind() {
	case snmp.KindCounter, snmp.KindGauge, snmp.KindOpaque:
		if f, err := variable.Value.Float(); err == nil {
			cv.Value = strconv.FormatFloat(f, 'g', -1, 64)
		} else {
			cv.Value = variable.Value.String()
			cv.ParseErr = err.Error()
		}
	default:
		cv.Value = variable.Value.String()
	}
	return cv
}

// parseWalkOutput reads numeric snmpwalk lines of the form
//
//	.1.3.6.1.2.1.1.3.0 = Timeticks: (216485) 0:36:04.85
//	.1.3.6.1.2.1.1.1.0 = STRING: "Linux server 5.4.0"
//
// Lines that do not look like varbinds are skipped with a debug log, the
// way walk parsers in the wild behave: walk dumps routinely contain
// banners and continuation lines.
func parseWalkOutput(r io.Reader, logger *slog.Logger) ([]snmp.Variable, error) {
	var variables []snmp.Variable

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line[0] != '.' && (line[0] < '0' || line[0] > '9') {
			logger.Debug("skipping non-OID line", "line", line, "lineNumber", lineNo)
			continue
		}

		variable, ok := parseWalkLine(line)
		if !ok {
			logger.Debug("skipping malformed line", "line", line, "lineNumber", lineNo)
			continue
		}
		variables = append(variables, variable)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return variables, nil
}

func parseWalkLine(line string) (snmp.Variable, bool) {
	oidPart, rest, found := strings.Cut(line, " = ")
	if !found {
		return snmp.Variable{}, false
	}
	oid := snmp.NewOID(strings.TrimSpace(oidPart))

	typeName, payload := parseTypedValue(strings.TrimSpace(rest))
	return snmp.NewVariable(oid, snmp.NewValue(typeName, payload)), true
}

// parseTypedValue splits the net-snmp "TYPE: value" rendering into a
// canonical type name and payload.
func parseTypedValue(rest string) (typeName string, payload any) {
	switch {
	case strings.HasPrefix(rest, "No Such Object"):
		return snmp.TypeNoSuchObject, nil
	case strings.HasPrefix(rest, "No Such Instance"):
		return snmp.TypeNoSuchInstance, nil
	case strings.HasPrefix(rest, "No more variables"):
		return snmp.TypeEndOfMibView, nil
	case rest == `""`:
		return "OctetString", ""
	}

	typ, value, found := strings.Cut(rest, ":")
	if !found {
		// Bare value with no type marker; net-snmp does this for some
		// unrenderable values.
		return "OctetString", rest
	}
	typ = strings.TrimSpace(typ)
	value = strings.TrimSpace(value)

	switch typ {
	case "INTEGER":
		return "Integer", value
	case "STRING":
		return "OctetString", strings.Trim(value, `"`)
	case "Hex-STRING":
		raw, err := hex.DecodeString(strings.ReplaceAll(value, " ", ""))
		if err != nil {
			return "OctetString", value
		}
		return "OctetString", raw
	case "Counter32", "Counter64", "Gauge32":
		return typ, value
	case "Unsigned32", "UInteger32":
		return "Unsigned32", value
	case "Timeticks":
		// "(216485) 0:36:04.85" -> 216485
		if open := strings.IndexByte(value, '('); open >= 0 {
			if end := strings.IndexByte(value, ')'); end > open {
				return "TimeTicks", value[open+1 : end]
			}
		}
		return "TimeTicks", value
	case "OID":
		return "ObjectIdentifier", value
	case "IpAddress", "Network Address":
		return "IpAddress", value
	case "Opaque":
		// "Float: 123.0" or "Double: 123.0"
		inner, num, found := strings.Cut(value, ":")
		if found {
			switch strings.TrimSpace(inner) {
			case "Float":
				return "OpaqueFloat", strings.TrimSpace(num)
			case "Double":
				return "OpaqueDouble", strings.TrimSpace(num)
			}
		}
		return "Opaque", value
	case "NULL":
		return "Null", nil
	}
	return typ, value
}
