package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"gendist/pkg/gendist"
)

// loadRunRequest reads a JSON run request. Only "domain" is required; every
// other field falls back to the zero value and is validated downstream.
func loadRunRequest(path string) (gendist.RunRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gendist.RunRequest{}, err
	}
	if !gjson.ValidBytes(data) {
		return gendist.RunRequest{}, fmt.Errorf("config %s: invalid JSON", path)
	}

	doc := gjson.ParseBytes(data)
	var req gendist.RunRequest
	req.Domain = doc.Get("domain").String()
	if req.Domain == "" {
		return gendist.RunRequest{}, fmt.Errorf("config %s: \"domain\" is required", path)
	}
	req.PopulationSize = int(doc.Get("population_size").Int())
	req.Generations = int(doc.Get("generations").Int())
	req.MutationRate = doc.Get("mutation_rate").Float()
	req.CrossoverRate = doc.Get("crossover_rate").Float()
	req.Seed = doc.Get("seed").Int()
	req.Survivor = doc.Get("survivor").String()

	doc.Get("prototype").ForEach(func(_, v gjson.Result) bool {
		req.Prototype = append(req.Prototype, v.Float())
		return true
	})
	req.Sigma = doc.Get("sigma").Float()

	req.UnitsPath = doc.Get("units_path").String()
	req.NeighborsPath = doc.Get("neighbors_path").String()
	return req, nil
}
