package requests

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const globalFieldCount = 3
const jobFieldCount = 4

// ReadText parses the plain workload format: "count, quantum, switchCost"
// followed by count records of "id, arrival, priority, burst". Values may be
// separated by commas, semicolons or whitespace; lines starting with '#' are
// ignored.
func ReadText(r io.Reader) (*ScheduleRequests, error) {
	values, err := scanIntegers(r)
	if err != nil {
		return nil, err
	}
	if len(values) < globalFieldCount {
		return nil, fmt.Errorf("%w: expected %d global values, got %d", ErrMalformedInput, globalFieldCount, len(values))
	}
	count, quantum, switchCost := values[0], values[1], values[2]
	if count < 0 {
		return nil, fmt.Errorf("%w: negative process count %d", ErrMalformedInput, count)
	}
	values = values[globalFieldCount:]
	if len(values) != count*jobFieldCount {
		return nil, fmt.Errorf("%w: expected %d process values for %d processes, got %d",
			ErrMalformedInput, count*jobFieldCount, count, len(values))
	}

	jobs := make([]Job, count)
	for i := range jobs {
		record := values[i*jobFieldCount : (i+1)*jobFieldCount]
		jobs[i] = Job{
			ProcessId:   record[0],
			ArrivalTime: record[1],
			Priority:    record[2],
			BurstTime:   record[3],
		}
	}
	return &ScheduleRequests{
		TimeQuantum: &quantum,
		SwitchCost:  &switchCost,
		Jobs:        jobs,
	}, nil
}

func scanIntegers(r io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ';' || c == ' ' || c == '\t'
		})
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedInput, line, field)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return values, nil
}

// ReadYAML parses a workload document with quantum, switch_cost and jobs keys.
// Unknown keys are rejected.
func ReadYAML(r io.Reader) (*ScheduleRequests, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	var request ScheduleRequests
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil {
		if err == io.EOF {
			return &request, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return &request, nil
}

// Read dispatches on format ("text" or "yaml").
func Read(r io.Reader, format string) (*ScheduleRequests, error) {
	switch strings.ToLower(format) {
	case "", "text", "txt":
		return ReadText(r)
	case "yaml", "yml":
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("unknown workload format %q", format)
	}
}
