package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// tradeResponse is the JSON receipt of an accepted buy
type tradeResponse struct {
	Symbol    string `json:"symbol"`
	Shares    int64  `json:"shares"`
	Total     string `json:"total"`
	CashAfter string `json:"cashAfter"`
}

// portfolioResponse is the part of GET / this script needs
type portfolioResponse struct {
	Username string `json:"username"`
	Cash     string `json:"cash"`
}

// errorResponse is the JSON apology
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Accepted     bool
	Total        decimal.Decimal
	ResponseTime time.Duration
	StatusCode   int
	Message      string
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Accepted      int
	Rejected      int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	Spent         decimal.Decimal
	Rejections    map[string]int
	Lock          sync.Mutex
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 50, "Total number of buy requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the portfolio tracker")
	symbol := flag.String("symbol", "NFLX", "Symbol to buy")
	maxShares := flag.Int("shares", 3, "Maximum shares per buy (1..shares)")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	username := fmt.Sprintf("load-%d", time.Now().UnixNano())
	fmt.Printf("Registering %s against %s\n", username, *baseURL)

	resp, err := client.R().
		SetFormData(map[string]string{
			"username":     username,
			"password":     "load-test-password",
			"confirmation": "load-test-password",
		}).
		SetError(&errorResponse{}).
		Post("/register")
	if err != nil || resp.StatusCode() != http.StatusOK {
		fail("registration failed", resp, err)
	}

	startingCash := fetchCash(client)
	fmt.Printf("Starting cash: %s\n", startingCash.StringFixed(2))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total buys: %d of up to %d %s\n", *totalRequests, *maxShares, *symbol)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		Spent:         decimal.Zero,
		Rejections:    make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				record(stats, buy(client, *symbol, 1+rand.Intn(*maxShares)))
			}
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)

	// The ledger must account for every accepted purchase and nothing else
	finalCash := fetchCash(client)
	expected := startingCash.Sub(stats.Spent)

	fmt.Println("\n================= CONSISTENCY =================")
	fmt.Printf("Expected cash: %s\n", expected.StringFixed(2))
	fmt.Printf("Actual cash:   %s\n", finalCash.StringFixed(2))
	if !finalCash.Equal(expected) {
		fmt.Println("❌ CASH DOES NOT MATCH the accepted purchases")
		os.Exit(1)
	}
	if finalCash.IsNegative() {
		fmt.Println("❌ CASH WENT NEGATIVE")
		os.Exit(1)
	}
	fmt.Println("✅ Cash equals starting balance minus accepted purchases")
}

func buy(client *resty.Client, symbol string, shares int) TestResult {
	start := time.Now()
	resp, err := client.R().
		SetFormData(map[string]string{
			"symbol": symbol,
			"shares": fmt.Sprint(shares),
		}).
		SetResult(&tradeResponse{}).
		SetError(&errorResponse{}).
		Post("/buy")

	result := TestResult{ResponseTime: time.Since(start)}
	if err != nil {
		result.Message = err.Error()
		return result
	}

	result.StatusCode = resp.StatusCode()
	if resp.IsError() {
		result.Message = fmt.Sprintf("HTTP %d", resp.StatusCode())
		if apology, ok := resp.Error().(*errorResponse); ok && apology.Message != "" {
			result.Message = apology.Message
		}
		return result
	}

	receipt := resp.Result().(*tradeResponse)
	total, err := decimal.NewFromString(receipt.Total)
	if err != nil {
		result.Message = "malformed receipt total"
		return result
	}

	result.Accepted = true
	result.Total = total
	return result
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	if result.Accepted {
		stats.Accepted++
		stats.Spent = stats.Spent.Add(result.Total)
		return
	}
	stats.Rejected++
	stats.Rejections[result.Message]++
}

func fetchCash(client *resty.Client) decimal.Decimal {
	resp, err := client.R().SetResult(&portfolioResponse{}).Get("/")
	if err != nil || resp.StatusCode() != http.StatusOK {
		fail("portfolio request failed", resp, err)
	}

	cash, err := decimal.NewFromString(resp.Result().(*portfolioResponse).Cash)
	if err != nil {
		fail("malformed cash", resp, err)
	}
	return cash
}

func fail(message string, resp *resty.Response, err error) {
	if err != nil {
		fmt.Printf("%s: %v\n", message, err)
	} else if resp != nil {
		fmt.Printf("%s: HTTP %d %s\n", message, resp.StatusCode(), resp.String())
	} else {
		fmt.Println(message)
	}
	os.Exit(1)
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Buys:       %d\n", stats.TotalRequests)
	fmt.Printf("Accepted:         %d\n", stats.Accepted)
	fmt.Printf("Rejected:         %d\n", stats.Rejected)
	fmt.Printf("Total Spent:      %s\n", stats.Spent.StringFixed(2))
	fmt.Printf("Total Test Time:  %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:       %.2f buys/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:     %v\n", percentile(50))
	fmt.Printf("P90 Response:     %v\n", percentile(90))
	fmt.Printf("P99 Response:     %v\n", percentile(99))

	if stats.Rejected > 0 {
		fmt.Println("\n----------------- REJECTIONS -----------------")
		for msg, count := range stats.Rejections {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
