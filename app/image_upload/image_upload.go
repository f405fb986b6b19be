package main

import (
	formatter "github.com/bluexlab/logrus-formatter"
	"github.com/filesmanager/image-upload/pkg/files/cli"
)

func main() {
	formatter.InitLogger()
	cli := cli.App{}
	cli.Run()
}
