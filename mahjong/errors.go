package mahjong

import (
	"errors"
	"fmt"
)

// 所有错误都是调用方违约（入参不合法），算法开始搜索前就会返回，不存在可重试的情况。
var (
	// ErrInvalidHandSize 手牌总数与请求的操作不匹配（胡牌判定要14张，向听/进张要13张）
	ErrInvalidHandSize = errors.New("mahjong: invalid hand size")
	// ErrInvalidTileCount 某种牌的张数超出[0,4]
	ErrInvalidTileCount = errors.New("mahjong: invalid tile count")
	// ErrInvalidTileKind 牌的编号不在0-26范围内
	ErrInvalidTileKind = errors.New("mahjong: invalid tile kind")
)

func newHandSizeError(got, want int) error {
	return fmt.Errorf("%w: got %d tiles, want %d", ErrInvalidHandSize, got, want)
}

func newTileCountError(tile Tile, count int) error {
	return fmt.Errorf("%w: %s has %d copies", ErrInvalidTileCount, tile.Name(), count)
}

func newTileKindError(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidTileKind, name)
}

func newTileIndexError(index int) error {
	return fmt.Errorf("%w: index %d", ErrInvalidTileKind, index)
}
