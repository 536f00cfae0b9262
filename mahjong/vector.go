package mahjong

import "strings"

// TileVector 27格定长频次向量，每格是对应牌种的张数。
// 值类型，赋值即克隆；搜索中的增减都在自己的副本或显式配对的还原里完成。
type TileVector [TileKindCount]uint8

// NewTileVector 由27个整数直接构造，逐格校验[0,4]。
func NewTileVector(counts []int) (TileVector, error) {
	var v TileVector
	if len(counts) != TileKindCount {
		return v, newHandSizeError(len(counts), TileKindCount)
	}
	for i, c := range counts {
		if c < 0 || c > SameTileCount {
			return v, newTileCountError(Tile(i), c)
		}
		v[i] = uint8(c)
	}
	return v, nil
}

// TileVectorFromTiles 由牌的多重集构造。
func TileVectorFromTiles(tiles []Tile) (TileVector, error) {
	var v TileVector
	for _, t := range tiles {
		if !t.IsValid() {
			return TileVector{}, newTileIndexError(int(t))
		}
		v[t]++
		if int(v[t]) > SameTileCount {
			return TileVector{}, newTileCountError(t, int(v[t]))
		}
	}
	return v, nil
}

func (v TileVector) Count(t Tile) int {
	if !t.IsValid() {
		return 0
	}
	return int(v[t])
}

func (v TileVector) Total() int {
	total := 0
	for _, c := range v {
		total += int(c)
	}
	return total
}

func (v TileVector) IsEmpty() bool {
	return v == TileVector{}
}

func (v TileVector) Clone() TileVector {
	return v
}

// Tiles 展开成有序的牌列表。
func (v TileVector) Tiles() []Tile {
	tiles := make([]Tile, 0, v.Total())
	for i, c := range v {
		tiles = append(tiles, makeTiles(Tile(i), int(c))...)
	}
	return tiles
}

func (v TileVector) String() string {
	var names []string
	for i, c := range v {
		for range int(c) {
			names = append(names, Tile(i).Name())
		}
	}
	return strings.Join(names, ",")
}

// checkHand 校验每格张数及手牌总数，want为期望总数。
func (v TileVector) checkHand(want int) error {
	total := 0
	for i, c := range v {
		if int(c) > SameTileCount {
			return newTileCountError(Tile(i), int(c))
		}
		total += int(c)
	}
	if total != want {
		return newHandSizeError(total, want)
	}
	return nil
}

// cacheKey 供Evaluator做记忆化用的稳定键。
func (v TileVector) cacheKey() string {
	var b [TileKindCount]byte
	for i, c := range v {
		b[i] = byte(c)
	}
	return string(b[:])
}
