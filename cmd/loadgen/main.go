// Command loadgen drives a bounded store with concurrent traffic and
// reports throughput plus the store's own stats, to sanity-check lock
// contention and eviction behavior under load.
package main

import (
	"fmt"
	"sync"
	"time"

	"bcache"
)

func main() {
	const (
		capacity    = 200000
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
	)

	fmt.Println("================ STORE LOAD BENCHMARK ================")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)

	store, err := bcache.New(bcache.Config{
		MaxEntries:    capacity,
		DefaultTTL:    60 * time.Second,
		SweepInterval: time.Second,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	fmt.Println("Preloading store...")
	for i := 0; i < preloadKeys; i++ {
		store.Set(fmt.Sprintf("key-%d", i), i)
	}

	fmt.Println("Running concurrency benchmark...")
	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				store.Get(fmt.Sprintf("key-%d", j%preloadKeys))
			}
		}()
	}
	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG
	st := store.Stats()

	fmt.Println("\n================ RESULTS ================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Live Keys        : %d/%d\n", st.TotalKeys, st.Capacity)
	fmt.Printf("Hits/Misses      : %d/%d\n", st.Hits, st.Misses)
	fmt.Printf("Evictions        : %d\n", st.Evictions)
	fmt.Printf("Expirations      : %d\n", st.Expirations)
}
