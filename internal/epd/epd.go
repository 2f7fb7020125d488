package epd

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kinderchess/kinder/pkg/common"
)

//go:embed perftsuite.epd
var defaultSuite string

var errBadDepth = errors.New("bad depth entry")

type DepthNodes struct {
	Depth int
	Nodes int64
}

// PerftTest is one line of a perft suite: "<fen> ;D1 20 ;D2 400".
type PerftTest struct {
	Fen      string
	Position common.Position
	Depths   []DepthNodes
}

// Default returns the embedded reference suite.
func Default() []PerftTest {
	var tests, err = Parse(strings.NewReader(defaultSuite))
	if err != nil {
		panic(err)
	}
	return tests
}

func Load(filePath string) ([]PerftTest, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Parse skips blank lines and lines starting with '#'.
func Parse(r io.Reader) ([]PerftTest, error) {
	var result []PerftTest
	var scanner = bufio.NewScanner(r)
	var lineNumber = 0
	for scanner.Scan() {
		lineNumber++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var test, err = ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", lineNumber, err)
		}
		result = append(result, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func ParseLine(s string) (PerftTest, error) {
	var parts = strings.Split(s, ";")
	var fen = strings.TrimSpace(parts[0])
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return PerftTest{}, err
	}
	var result = PerftTest{
		Fen:      fen,
		Position: p,
	}
	for _, part := range parts[1:] {
		var fields = strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 || len(fields[0]) < 2 || fields[0][0] != 'D' {
			return PerftTest{}, fmt.Errorf("%w: %q", errBadDepth, part)
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil || depth < 1 {
			return PerftTest{}, fmt.Errorf("%w: %q", errBadDepth, part)
		}
		nodes, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || nodes < 0 {
			return PerftTest{}, fmt.Errorf("%w: %q", errBadDepth, part)
		}
		result.Depths = append(result.Depths, DepthNodes{Depth: depth, Nodes: nodes})
	}
	return result, nil
}
