package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/olist/olist"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	itemCount := flag.Int("items", 100000, "The steady-state number of items in the list.")
	refCount := flag.Int("refs", 64, "The number of stable refs to churn during the run.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting olist stress test...")

	// 1. Populate the list
	log.Printf("Populating list with %d items...\n", *itemCount)
	list := olist.New[int64]()
	for i := 0; i < *itemCount; i++ {
		list.Add(rand.Int63())
	}
	log.Println("Population complete.")

	// 2. Pin stable refs scattered across the list
	refs := make([]*olist.Ref[int64], 0, *refCount)
	for i := 0; i < *refCount; i++ {
		ref, err := list.Ref(rand.Intn(list.Len()))
		if err != nil {
			log.Fatalf("Failed to create ref: %v", err)
		}
		refs = append(refs, ref)
	}

	// 3. Run the churn loop
	report := &Report{
		Duration:       *duration,
		Items:          *itemCount,
		Refs:           *refCount,
		GCPauseMetrics: *gcPauseMetrics,
		RoundTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn loop for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalRounds int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			roundStart := time.Now()
			runRound(list, refs)
			roundDuration := time.Since(roundStart)

			report.RoundTime.Samples = append(report.RoundTime.Samples, roundDuration)
			totalRounds++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalRounds = totalRounds
	report.RoundTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn loop finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// runRound performs one mixed batch of operations while keeping the list at
// its steady-state size: removals are balanced by adds, and any ref that
// goes dead is re-pinned to a fresh slot.
func runRound(list *olist.List[int64], refs []*olist.Ref[int64]) {
	// Random point removals with matching appends
	for i := 0; i < 16; i++ {
		if err := list.Remove(rand.Intn(list.Len())); err != nil {
			log.Fatalf("Remove failed: %v", err)
		}
		list.Add(rand.Int63())
	}

	// Random bounds-checked reads and writes
	for i := 0; i < 64; i++ {
		idx := rand.Intn(list.Len())
		v, err := list.Get(idx)
		if err != nil {
			log.Fatalf("Get failed: %v", err)
		}
		if err := list.Set(idx, v+1); err != nil {
			log.Fatalf("Set failed: %v", err)
		}
	}

	// One full cursor traversal
	var sum int64
	for list.Rewind(); list.Valid(); list.Advance() {
		v, err := list.Current()
		if err != nil {
			log.Fatalf("Current failed: %v", err)
		}
		sum += v
	}
	_ = sum

	// Resolve every pinned ref; re-pin the ones the removals killed
	for i, ref := range refs {
		if _, err := ref.Get(); err == nil {
			continue
		}
		fresh, err := list.Ref(rand.Intn(list.Len()))
		if err != nil {
			log.Fatalf("Re-pinning ref failed: %v", err)
		}
		refs[i] = fresh
	}
}
