package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type route struct {
	Number *string `json:"number"`
	Label  *string `json:"label"`
	Delay  *int    `json:"delay"`
}

func main() {
	// Karlovy Vary Terminál ID
	url := "https://brn-ybus-pubapi.sa.cz/restapi/routes/17902024/departures?limit=5"

	fmt.Println("Fetching live RegioJet departures...")

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Lang", "cs")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var routes []route
	err = json.Unmarshal(body, &routes)
	if err != nil {
		fmt.Println("Error decoding JSON:", err)
		return
	}

	fmt.Println("\n--- 🚌 Next Departures: Karlovy Vary Terminál ---")
	for _, r := range routes {
		number, label := "N/A", "N/A"
		if r.Number != nil {
			number = *r.Number
		}
		if r.Label != nil {
			label = *r.Label
		}

		status := "ON TIME"
		if r.Delay != nil && *r.Delay > 0 {
			status = fmt.Sprintf("+%d min delay", *r.Delay)
		}

		fmt.Printf("Service %s: %s (%s)\n", number, label, status)
	}
}
