package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"

	"github.com/kevin-chtw/tw_xzdd/mahjong"
	"github.com/kevin-chtw/tw_xzdd/utils"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
)

// 手牌分析命令行：库本身不带任何界面，这里只是DiscardAdvisor的一个消费方，
// 输入中文牌名，输出向听、进张和弃牌建议。
func main() {
	app := cli.NewApp()
	app.Name = "advisor"
	app.Usage = "血战到底手牌分析：13张算向听和进张，14张给弃牌建议"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "hand",
			Usage: "逗号分隔的手牌，例如 \"1万,2万,3万,5条,5条,...\"",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "可选的YAML配置（log_level、log_dir）",
		},
	}
	app.Action = analyze

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyze(c *cli.Context) error {
	log := newLogger(c.String("config"))

	hand := c.String("hand")
	if hand == "" {
		return cli.NewExitError("missing --hand", 1)
	}

	tiles, err := mahjong.ParseTiles(hand)
	if err != nil {
		return err
	}
	v, err := mahjong.TileVectorFromTiles(tiles)
	if err != nil {
		return err
	}
	log.Debugf("analyzing %d tiles: %s", v.Total(), v)

	switch v.Total() {
	case mahjong.TileCountInitNormal:
		return analyze13(v)
	case mahjong.TileCountInitBanker:
		return analyze14(v)
	default:
		return cli.NewExitError(fmt.Sprintf("hand must have 13 or 14 tiles, got %d", v.Total()), 1)
	}
}

func analyze13(v mahjong.TileVector) error {
	step, err := mahjong.CalcShanten(v)
	if err != nil {
		return err
	}
	ukeire, err := mahjong.CalcUkeire(v)
	if err != nil {
		return err
	}

	if step == 0 {
		color.HiGreen("听牌")
	} else {
		fmt.Printf("%d向听\n", step)
	}
	printUkeire(ukeire)
	return nil
}

func analyze14(v mahjong.TileVector) error {
	hu, err := mahjong.CheckHu(v)
	if err != nil {
		return err
	}
	if hu {
		color.HiRed("已胡牌")
		return nil
	}

	advices, err := mahjong.BestDiscards(v)
	if err != nil {
		return err
	}
	for _, a := range advices {
		fmt.Printf("打 %s：", a.Tile.Name())
		if a.Shanten == 0 {
			color.New(color.FgHiGreen).Printf("听牌")
		} else {
			fmt.Printf("%d向听", a.Shanten)
		}
		fmt.Printf("，进张%d张", a.UkeireTotal)
		if len(a.Ukeire) > 0 {
			fmt.Printf("（%s）", mahjong.TilesName(a.Ukeire.Tiles()))
		}
		fmt.Println()
	}
	return nil
}

func printUkeire(ukeire mahjong.UkeireSet) {
	if len(ukeire) == 0 {
		fmt.Println("没有进张")
		return
	}
	fmt.Printf("进张%d张：", ukeire.Total())
	for _, tile := range ukeire.Tiles() {
		color.New(color.FgHiCyan).Printf(" %s", tile.Name())
		fmt.Printf("x%d", ukeire[tile])
	}
	fmt.Println()
}

func newLogger(configFile string) interfaces.Logger {
	level := logrus.InfoLevel
	logPath := "./logs"

	if configFile != "" {
		vp := viper.New()
		vp.SetConfigType("yaml")
		vp.SetConfigFile(configFile)
		vp.SetDefault("log_level", level.String())
		vp.SetDefault("log_dir", logPath)
		if err := vp.ReadInConfig(); err == nil {
			if parsed, err := logrus.ParseLevel(vp.GetString("log_level")); err == nil {
				level = parsed
			}
			logPath = vp.GetString("log_dir")
		}
	}
	return utils.Logger(level, logPath)
}
