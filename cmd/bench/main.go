package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/promo-schedule/config"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/cacheclient"
	"github.com/QuangTung97/promo-schedule/pkg/leasestore"
	"github.com/QuangTung97/promo-schedule/pkg/memtable"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/QuangTung97/promo-schedule/pkg/util"
	"github.com/QuangTung97/promo-schedule/repository"
	"github.com/QuangTung97/promo-schedule/service/campaign"
	"github.com/QuangTung97/promo-schedule/service/readonly"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchEvaluateCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchDeps struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	repoProvider readonly.RepositoryProvider
	client       *cacheclient.Client
}

func newBenchDeps(conf config.Config) benchDeps {
	numConns := 1
	if conf.Memcache.NumConns > 0 {
		numConns = conf.Memcache.NumConns
	}
	fmt.Println("NUM CONNS:", numConns)
	fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())

	db := conf.MySQL.MustConnect(zap.NewNop())
	client, err := cacheclient.New(conf.Memcache.Addr(), numConns)
	if err != nil {
		panic(err)
	}

	campaignRepo := repository.NewCampaign()
	repoProvider := readonly.NewRepositoryProvider(
		memtable.New(conf.Schedule.LocalCacheSize), leasestore.NewProvider(client), campaignRepo,
		readonly.WithDBOnly(conf.DBOnly),
		readonly.WithLocalTTL(conf.Schedule.LocalCacheSeconds),
		readonly.WithSessionOptions(leasestore.WithLeaseTTL(conf.Schedule.LeaseTTL)),
	)

	return benchDeps{
		provider:     repository.NewProvider(db),
		campaignRepo: campaignRepo,
		repoProvider: repoProvider,
		client:       client,
	}
}

func benchEvaluate(batchSize int) {
	conf := config.Load()
	fmt.Println("DBONLY:", conf.DBOnly)

	deps := newBenchDeps(conf)
	defer func() { _ = deps.client.Close() }()

	campaigns, err := deps.campaignRepo.ListCampaigns(deps.provider.Readonly(context.Background()))
	if err != nil {
		panic(err)
	}
	if len(campaigns) == 0 {
		fmt.Println("no campaigns, run the seed command first")
		return
	}

	loc, err := conf.Schedule.Location()
	if err != nil {
		panic(err)
	}

	const numThreads = 50
	const numElements = 2000

	durations := make([][]time.Duration, numThreads)

	service := readonly.NewService(deps.provider, deps.repoProvider, nil)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				reqTime := time.Now().In(loc)
				inputs := make([]readonly.Input, 0, batchSize)
				for k := 0; k < batchSize; k++ {
					c := campaigns[(threadIndex*numElements+i+k)%len(campaigns)]
					inputs = append(inputs, readonly.Input{
						CampaignID: c.ID,
						ReqTime:    reqTime,
					})
				}

				start := time.Now()
				outputs := service.Evaluate(context.Background(), inputs)
				for _, output := range outputs {
					if output.Err != nil {
						fmt.Println(output.Err)
					}
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	history := make([]time.Duration, 0, numThreads*numElements)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	avg := total / time.Duration(numThreads*numElements)

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := numElements * numThreads
	p50Index := numHistory * 50 / 100
	p90Index := numHistory * 90 / 100
	p95Index := numHistory * 95 / 100
	p99Index := numHistory * 99 / 100
	p999Index := numHistory * 999 / 1000

	fmt.Println("P50:", history[p50Index])
	fmt.Println("P90:", history[p90Index])
	fmt.Println("P95:", history[p95Index])
	fmt.Println("P99:", history[p99Index])
	fmt.Println("P999:", history[p999Index])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", len(history))

	fmt.Println("AVG:", avg)
}

func benchEvaluateCommand() *cobra.Command {
	batchSize := 2
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "benchmark campaign status evaluation",
		Run: func(cmd *cobra.Command, args []string) {
			benchEvaluate(batchSize)
		},
	}
	cmd.Flags().IntVar(&batchSize, "batch", batchSize, "number of campaigns per request")
	return cmd
}

// sampleInput derives a campaign form from the hash of its name
func sampleInput(name string, today time.Time) campaign.Input {
	h := util.HashFunc(name)

	campaignType := model.CampaignTypes[int(h%uint32(len(model.CampaignTypes)))]
	first := schedule.Weekday(h % 7)
	second := schedule.Weekday((h/7 + 1) % 7)
	startMinute := schedule.TimeOfDay(int(h/49%12)*60 + 6*60)
	endMinute := startMinute + schedule.TimeOfDay(int(h/784%4+1)*60)

	startDate := today.AddDate(0, 0, -int(h%30))
	endDate := today.AddDate(0, 0, int(h/30%60))

	return campaign.Input{
		Type:      campaignType.Key(),
		StartDate: startDate.Format("2006-01-02"),
		EndDate:   endDate.Format("2006-01-02"),
		Windows: []campaign.WindowInput{
			{
				Weekdays:  []string{first.String(), second.String()},
				StartTime: startMinute.String(),
				EndTime:   endMinute.String(),
			},
		},
	}
}

func seedDataCommand() *cobra.Command {
	count := 100
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "insert sample campaigns",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			deps := newBenchDeps(conf)
			defer func() { _ = deps.client.Close() }()

			loc, err := conf.Schedule.Location()
			if err != nil {
				panic(err)
			}

			ctx := context.Background()
			service := campaign.NewService(deps.provider, deps.campaignRepo, deps.repoProvider)
			if err := service.Reload(ctx); err != nil {
				panic(err)
			}

			today := time.Now().In(loc)
			for i := 0; i < count; i++ {
				c, err := service.Create(ctx, sampleInput(fmt.Sprintf("CAMPAIGN%04d", i), today))
				if err != nil {
					panic(err)
				}
				fmt.Println("CREATED:", c.ID)
			}
		},
	}
	cmd.Flags().IntVar(&count, "count", count, "number of campaigns to insert")
	return cmd
}
