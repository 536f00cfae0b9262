package mahjong

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// 血战到底只用数牌：万、条、筒各1-9，共27种、每种4张。
// 牌的编号即对外契约：0-8=万1-9，9-17=条1-9，18-26=筒1-9。
type Tile int

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorEnd
	ColorBegin = ColorCharacter
)

const (
	PointCount    = 9                          // 每门点数1-9
	ColorCount    = int(ColorEnd - ColorBegin) // 三门
	TileKindCount = ColorCount * PointCount    // 27种牌
	SameTileCount = 4                          // 每种4张

	TileCountInitBanker = 14
	TileCountInitNormal = 13
)

const TileNull Tile = -1

var colorNames = [ColorEnd]string{"万", "条", "筒"}

// 静态表：名称最后一个字 -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
	'筒': ColorDot,
}

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)*PointCount + point)
}

func (t Tile) Color() EColor {
	return EColor(int(t) / PointCount)
}

// Point 返回点数下标0-8，对应牌面1-9。
func (t Tile) Point() int {
	return int(t) % PointCount
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsValid() bool {
	return t >= 0 && int(t) < TileKindCount
}

func (t Tile) Is258() bool {
	return t.IsValid() && t.Point()%3 == 1
}

func (t Tile) Name() string {
	if !t.IsValid() {
		return ""
	}
	c, p := t.Info()
	return strconv.Itoa(p+1) + colorNames[c]
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

// ParseTile 解析"3万"、"9筒"这样的单张牌名，失败返回TileNull。
func ParseTile(name string) Tile {
	if name == "" {
		return TileNull
	}
	r, size := utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull
	}
	prefix := name[:len(name)-size]
	num, err := strconv.Atoi(prefix)
	if err != nil || num < 1 || num > PointCount {
		return TileNull
	}
	return MakeTile(color, num-1)
}

// ParseTiles 解析逗号分隔的牌名列表，任何一张非法即报错。
func ParseTiles(names string) ([]Tile, error) {
	parts := strings.Split(names, ",")
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		t := ParseTile(strings.TrimSpace(name))
		if t == TileNull {
			return nil, newTileKindError(name)
		}
		res = append(res, t)
	}
	return res, nil
}

func makeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
