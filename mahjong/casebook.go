package mahjong

import (
	"github.com/spf13/viper"
)

// CaseBook 从YAML读入一批"手牌->期望向听"的参考用例。
// 标准型向听公式的边角（零块手、超五块手）容易在文献间对不上，
// 算法改动后跑一遍参考表比盯公式可靠。
type CaseBook struct {
	vp *viper.Viper
}

// RefCase 参考表里的一条用例。
type RefCase struct {
	Name    string `mapstructure:"name"`
	Tiles   string `mapstructure:"tiles"`
	Shanten int    `mapstructure:"shanten"`
}

// LoadCaseBook 读取参考表，文件不存在或不可读返回nil。
func LoadCaseBook(path string) *CaseBook {
	c := &CaseBook{
		vp: viper.New(),
	}
	c.vp.SetConfigType("yaml")
	c.vp.SetConfigFile(path)
	if err := c.vp.ReadInConfig(); err != nil {
		return nil
	}
	return c
}

func (c *CaseBook) Enabled() bool {
	if c == nil {
		return false
	}
	return c.vp.GetBool("enable")
}

// Cases 返回全部用例，解析失败返回空表。
func (c *CaseBook) Cases() []RefCase {
	if c == nil {
		return nil
	}
	var cases []RefCase
	if err := c.vp.UnmarshalKey("cases", &cases); err != nil {
		return nil
	}
	return cases
}
