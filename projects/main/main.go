package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/open-control-systems/cast-hub/components/cast"
	"github.com/open-control-systems/cast-hub/components/cast/castcmd"
	"github.com/open-control-systems/cast-hub/components/core"
	"github.com/open-control-systems/cast-hub/components/http/htcore"
	"github.com/open-control-systems/cast-hub/components/pipeline/pipcast"
	"github.com/open-control-systems/cast-hub/components/pipeline/pipdiscover"
	"github.com/open-control-systems/cast-hub/components/pipeline/piphttp"
	"github.com/open-control-systems/cast-hub/components/pipeline/pipstore"
	"github.com/open-control-systems/cast-hub/components/storage/stinfluxdb"
	"github.com/open-control-systems/cast-hub/components/system/syssched"
)

type envContext struct {
	logPath string

	serverParams htcore.ServerParams
	staticDir    string

	storeParams    pipstore.PipelineParams
	discoverParams pipdiscover.PipelineParams
	castParams     pipcast.PipelineParams
	dbParams       stinfluxdb.DBParams
}

func main() {
	env := &envContext{}

	cmd := &cobra.Command{
		Use:          "cast-hub",
		Short:        "cast-hub controls Google Cast receivers over HTTP API",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(env)
		},
	}

	flags := cmd.Flags()

	flags.StringVar(&env.logPath, "log-path", os.Getenv("CAST_HUB_LOG_PATH"),
		"log file path, stderr is used if empty")

	flags.StringVar(&env.serverParams.Host, "host", "", "HTTP server host")
	flags.IntVar(&env.serverParams.Port, "port", envInt("PORT", 8080), "HTTP server port")
	flags.StringVar(&env.staticDir, "static-dir", "./dist", "web UI directory")

	flags.StringVar(&env.storeParams.Storage, "storage", pipstore.StorageFile,
		"device registry storage: file, bbolt")
	flags.StringVar(&env.storeParams.ConfigPath, "config-path", "./config.json",
		"device registry JSON file, used with file storage")
	flags.StringVar(&env.storeParams.DBPath, "db-path", "./cast-hub.db",
		"device registry bbolt database, used with bbolt storage")

	flags.StringVar(&env.discoverParams.Browser, "discovery", pipdiscover.BrowserZeroconf,
		"mDNS browser: zeroconf, mdns, none")
	flags.DurationVar(&env.discoverParams.Interval, "discovery-interval", time.Second*30,
		"how often to browse the local network")
	flags.DurationVar(&env.discoverParams.Timeout, "discovery-timeout", time.Second*10,
		"how long a single browsing lasts")

	flags.StringVar(&env.castParams.CattPath, "catt-path", castcmd.DefaultPath,
		"casting tool executable")
	flags.IntVar(&env.castParams.DispatchLimit, "dispatch-limit", 0,
		"maximum number of devices handled at once, 0 means no limit")

	flags.StringVar(&env.dbParams.URL, "influxdb-url", os.Getenv("INFLUXDB_URL"),
		"influxDB URL, outcomes aren't recorded if empty")
	flags.StringVar(&env.dbParams.Org, "influxdb-org", os.Getenv("INFLUXDB_ORG"),
		"influxDB organization")
	flags.StringVar(&env.dbParams.Bucket, "influxdb-bucket", os.Getenv("INFLUXDB_BUCKET"),
		"influxDB bucket")
	flags.StringVar(&env.dbParams.Token, "influxdb-token", os.Getenv("INFLUXDB_API_TOKEN"),
		"influxDB API token")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(env *envContext) error {
	if err := core.SetLogFile(env.logPath); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to setup log file: ", err)
	}

	fanoutCloser := &core.FanoutCloser{}
	defer fanoutCloser.Close()

	appContext, cancelFunc := signal.NotifyContext(context.Background(),
		unix.SIGHUP,
		unix.SIGINT,
		unix.SIGTERM,
		unix.SIGQUIT)
	defer cancelFunc()

	fanoutStarter := &syssched.FanoutStarter{}

	store, err := pipstore.NewStore(fanoutCloser, env.storeParams)
	if err != nil {
		return err
	}

	discoverPipeline, err := pipdiscover.NewPipeline(appContext, fanoutCloser, env.discoverParams)
	if err != nil {
		return err
	}
	fanoutStarter.Add(discoverPipeline)

	var outcomeHandler cast.OutcomeHandler
	if env.dbParams.URL != "" {
		outcomeHandler = stinfluxdb.NewOutcomeHandler(appContext, fanoutCloser, env.dbParams)
	}

	serverPipeline, err := piphttp.NewServerPipeline(fanoutCloser, piphttp.ServerPipelineParams{
		Server:    env.serverParams,
		StaticDir: env.staticDir,
	})
	if err != nil {
		return err
	}
	fanoutStarter.Add(serverPipeline)

	pipcast.NewPipeline(
		appContext,
		serverPipeline.GetServeMux(),
		store,
		discoverPipeline.GetFeed(),
		outcomeHandler,
		env.castParams,
	)

	fanoutStarter.Start()

	<-appContext.Done()

	core.LogInf.Println("cast-hub: shutting down")

	return nil
}

func envInt(key string, def int) int {
	str := os.Getenv(key)
	if str == "" {
		return def
	}

	value, err := strconv.Atoi(str)
	if err != nil {
		core.LogWrn.Printf("cast-hub: ignore invalid env: key=%s value=%s err=%v\n", key, str, err)

		return def
	}

	return value
}
