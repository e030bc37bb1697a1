package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8000"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Chat API Smoke Test\n")

	// 1. Health
	color.Yellow("\n1. Health Check")
	resp, body, err := sendRequest("GET", "/api/health", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	fmt.Println(string(body))

	// 2. In-domain English question
	color.Yellow("\n2. In-Domain Question (EN)")
	resp, body, err = sendRequest("POST", "/api/chat/v1", map[string]interface{}{
		"message":  "How do I link my Aadhaar with my bank account?",
		"language": "en",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var answerResp map[string]interface{}
	json.Unmarshal(body, &answerResp)
	prettyPrint(answerResp)

	// 3. Hindi default language
	color.Yellow("\n3. Default Language Question (HI)")
	resp, body, err = sendRequest("POST", "/api/chat/v1", map[string]interface{}{
		"message": "dbt kya hai",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &answerResp)
	prettyPrint(answerResp)

	// 4. Out-of-domain question should get the refusal
	color.Yellow("\n4. Out-of-Domain Question (expect refusal)")
	resp, body, err = sendRequest("POST", "/api/chat/v1", map[string]interface{}{
		"message":  "What is the best pizza recipe?",
		"language": "en",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &answerResp)
	prettyPrint(answerResp)

	// 5. Empty message should be a 400
	color.Yellow("\n5. Empty Message (expect 400)")
	resp, body, err = sendRequest("POST", "/api/chat/v1", map[string]interface{}{
		"message": "   ",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusBadRequest {
		color.Green("Status: %s (as expected)", resp.Status)
	} else {
		color.Red("Status: %s (expected 400)", resp.Status)
	}
	fmt.Println(string(body))

	// 6. Webhook verification handshake with a wrong token
	color.Yellow("\n6. Webhook Verification (expect 403 with wrong token)")
	resp, body, err = sendRequest("GET", "/api/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=42", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusForbidden {
		color.Green("Status: %s (as expected)", resp.Status)
	} else {
		color.Red("Status: %s (expected 403)", resp.Status)
	}
	fmt.Println(string(body))

	color.Cyan("\n✅ Smoke test finished")
}
