package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/filesmanager/image-upload/pkg/files/client"
	"github.com/filesmanager/image-upload/pkg/files/model"
	"github.com/filesmanager/image-upload/pkg/files/uploader"
	"github.com/filesmanager/image-upload/pkg/util"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const appName string = "image-upload"

const otlpShutdownTimeout = 2 * time.Second

type App struct{}

type UploadCli struct {
	FilePath string `arg:"" name:"file_path" help:"Path of the file to upload"`
	Token    string `arg:"" name:"token" help:"Session token sent in the X-Token header"`
	ParentID string `arg:"" name:"parent_id" help:"ID of the destination folder"`

	Server       string        `short:"s" name:"server" env:"FILES_MANAGER_SERVER" help:"Files manager address" default:"http://0.0.0.0:5000"`
	Timeout      time.Duration `name:"timeout" env:"FILES_MANAGER_TIMEOUT" help:"HTTP timeout, 0 means none" default:"0s"`
	OTLPEndpoint string        `name:"otlp-endpoint" env:"OTLP_ENDPOINT" help:"OTLP collector endpoint, tracing is off when empty"`
	Verbose      bool          `short:"v" name:"verbose" help:"Enable debug logs"`
}

func (*App) Run() {
	cli := UploadCli{}
	kong.Parse(&cli,
		kong.Name(appName),
		kong.Description("Upload a file as a public image to the files manager."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Run(ctx, os.Stdout)
	stop()
	if err != nil {
		logrus.Errorf("failed to upload file: %v", err)
		os.Exit(1)
	}
}

func (cmd *UploadCli) Run(ctx context.Context, out io.Writer) error {
	if cmd.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if endpoint := cmd.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Warnf("failed to initialize OTLP exporter, tracing is off: %v", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), otlpShutdownTimeout)
				defer cancel()
				if err := exporter.Shutdown(shutdownCtx); err != nil {
					logrus.Warnf("failed to shut down OTLP exporter: %v", err)
				}
			}()
		}
	}

	restClient := client.NewRestClient(cmd.Server, cmd.Token, client.WithTimeout(cmd.Timeout))
	result, err := uploader.NewUploader(restClient).Upload(ctx, cmd.FilePath, cmd.ParentID)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, util.PrettyJSON(result)); err != nil {
		return err
	}

	file := model.File{}
	if err := json.Unmarshal(result, &file); err == nil && file.ID != "" {
		logrus.Infof("File uploaded with ID: %s", file.ID)
	}
	return nil
}
