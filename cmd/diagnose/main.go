// Smoke test for a running API instance. Hits every public endpoint and
// prints the responses. Usage:
//
//	go run ./cmd/diagnose [base-url]
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var apiBaseURL = "http://localhost:8000"

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(b))
}

func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	return resp, respBytes, err
}

func main() {
	if len(os.Args) > 1 {
		apiBaseURL = os.Args[1]
	}

	color.Cyan("🚀 Starting API Diagnostic against %s\n", apiBaseURL)

	color.Yellow("\n[1] Health Check")
	resp, body, err := sendRequest(http.MethodGet, apiBaseURL+"/health", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	printJSON(body)

	color.Yellow("\n[2] Dashboard Metrics")
	resp, body, err = sendRequest(http.MethodGet, apiBaseURL+"/api/metrics/v1", nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		printJSON(body)
	}

	color.Yellow("\n[3] Live Store Ratings")
	resp, body, err = sendRequest(http.MethodGet, apiBaseURL+"/api/metrics/v1/live-ratings", nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		printJSON(body)
	}

	color.Yellow("\n[4] Insight Query (misspelled on purpose)")
	queryBody := map[string]string{"prompt": "what are ppl sayhing about tranfers"}
	resp, body, err = sendRequest(http.MethodPost, apiBaseURL+"/api/insight/v1/query", queryBody)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		printJSON(body)
	}

	color.Yellow("\n[5] Insight Query (empty prompt, expect 400)")
	resp, body, err = sendRequest(http.MethodPost, apiBaseURL+"/api/insight/v1/query", map[string]string{"prompt": ""})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		printJSON(body)
	}

	color.Cyan("\n✅ Diagnostic Sequence Complete")
}

func printJSON(body []byte) {
	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return
	}
	prettyPrint(parsed)
}
