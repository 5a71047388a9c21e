package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fvm1d/calculator"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fvm1d",
	Short: "一维稳态导热有限体积计算",
	Long: `fvm1d 用有限体积法计算两端固定温度的一维导热棒的稳态温度分布。

Commands:
  solve  - 计算一个算例并输出温度分布
  serve  - 启动 websocket 计算服务`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "ini 配置文件 (默认使用内置参数)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
}

func loadConfig() (*calculator.Config, error) {
	return calculator.LoadConfig(cfgFile)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
