package main

import "location-filter-go/internal/regionscli"

func main() {
	regionscli.Execute()
}
