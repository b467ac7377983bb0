package main

import (
	"fmt"
	"openhours-service/internal/pkg/openhours"
	"strconv"
	"strings"
)

type statement struct {
	open  openhours.Input
	close openhours.Input
	label string
}

func parseStatements(values []string) ([]statement, error) {
	statements := make([]statement, 0, len(values))
	for _, value := range values {
		s, err := parseStatement(value)
		if err != nil {
			return nil, err
		}
		statements = append(statements, s)
	}
	return statements, nil
}

// parseStatement reads OPEN|CLOSE[|LABEL].
func parseStatement(value string) (statement, error) {
	parts := strings.SplitN(value, "|", 3)
	if len(parts) < 2 {
		return statement{}, fmt.Errorf("statement %q: want OPEN|CLOSE[|LABEL]", value)
	}

	open, err := parseEndpoint(parts[0])
	if err != nil {
		return statement{}, fmt.Errorf("statement %q: %w", value, err)
	}
	close, err := parseEndpoint(parts[1])
	if err != nil {
		return statement{}, fmt.Errorf("statement %q: %w", value, err)
	}

	s := statement{open: open, close: close}
	if len(parts) == 3 {
		s.label = strings.TrimSpace(parts[2])
	}
	return s, nil
}

// parseEndpoint treats @<digits> as an epoch instant and anything else as text.
func parseEndpoint(value string) (openhours.Input, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return openhours.Input{}, nil
	}
	if strings.HasPrefix(value, "@") {
		epoch, err := strconv.ParseInt(value[1:], 10, 64)
		if err != nil {
			return openhours.Input{}, fmt.Errorf("invalid epoch %q", value)
		}
		return openhours.Instant(epoch), nil
	}
	return openhours.Text(value), nil
}
