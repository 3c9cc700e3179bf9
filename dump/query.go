package dump

import (
	"fmt"

	"github.com/jmespath/go-jmespath"
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Query evaluates the JMESPath expression expr against a JSON projection and
// returns the result as JSON. Numbers are evaluated as float64, so integers
// beyond 2^53 lose precision in the result.
func Query(projection []byte, expr string) ([]byte, error) {
	q, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}

	var doc interface{}
	if err := jsonAPI.Unmarshal(projection, &doc); err != nil {
		return nil, fmt.Errorf("parse projection: %w", err)
	}

	result, err := q.Search(doc)
	if err != nil {
		return nil, fmt.Errorf("evaluate query: %w", err)
	}

	out, err := jsonAPI.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode query result: %w", err)
	}
	return out, nil
}
