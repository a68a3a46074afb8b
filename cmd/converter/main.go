package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/clients/cache"
	"max.ks1230/usd-converter/internal/clients/exchangerate"
	"max.ks1230/usd-converter/internal/config"
	"max.ks1230/usd-converter/internal/logger"
	"max.ks1230/usd-converter/internal/metrics"
	"max.ks1230/usd-converter/internal/model/converter"
	"max.ks1230/usd-converter/internal/model/messages"
	"max.ks1230/usd-converter/internal/model/rates"
	"max.ks1230/usd-converter/internal/tracing"
)

type entryStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the YAML config")
	amountFlag := flag.String("amount", "", "USD amount to convert, prompts when empty")
	flag.Parse()
	defer logger.Sync()

	conf, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	input, ok := readAmount(os.Stdin, os.Stdout, *amountFlag)
	if !ok {
		return
	}

	// parse before touching the network so bad input never triggers a fetch
	if _, err = messages.ParseAmount(input); err != nil {
		fmt.Println(err.Error())
		return
	}

	store, err := newStore(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init cache store", zap.Error(err))
	}

	fetcher := rates.NewFetcher(
		rates.NewCache(store, conf.Cache().Expiry()),
		exchangerate.New(conf.Rates()),
		conf.Retry(),
	)

	service := messages.NewService(
		converter.NewUsdRub(ctx, fetcher),
		converter.NewUsdEur(ctx, fetcher),
		converter.NewUsdGbp(ctx, fetcher),
		converter.NewUsdCny(ctx, fetcher),
	)

	results, err := service.HandleAmount(ctx, input)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	failed := color.New(color.FgRed)
	for _, res := range results {
		if res.Failed() {
			_, _ = failed.Println(res.String())
			continue
		}
		fmt.Println(res.String())
	}

	if err = metrics.Push(conf.Metrics(), prometheus.DefaultGatherer); err != nil {
		logger.Error("failed to push metrics", zap.Error(err))
	}
}

func readAmount(in io.Reader, out io.Writer, fromFlag string) (string, bool) {
	if fromFlag != "" {
		return fromFlag, true
	}

	_, _ = fmt.Fprintln(out, messages.PromptMessage)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("failed to read amount", zap.Error(err))
		return "", false
	}
	return line, true
}

func newStore(ctx context.Context, conf *config.Service) (entryStore, error) {
	cacheConf := conf.Cache()
	switch cacheConf.Backend() {
	case config.BackendFile:
		logger.Info("using file cache", zap.String("path", cacheConf.FilePath()))
		return cache.NewFileStore(cacheConf.FilePath()), nil
	case config.BackendMemory:
		return cache.NewMemoryStore(), nil
	case config.BackendMemcached:
		return cache.NewMemcacheStore(conf.Memcached(), cacheConf.Key(), cacheConf.Expiry())
	case config.BackendRedis:
		return cache.NewRedisStore(ctx, conf.Redis(), cacheConf.Key(), cacheConf.Expiry())
	default:
		return nil, errors.Errorf("unknown cache backend %q", cacheConf.Backend())
	}
}
