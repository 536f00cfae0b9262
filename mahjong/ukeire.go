package mahjong

// UkeireSet 进张表：牌种 -> 牌堆里还剩几张（4减去手里已有的）。
// 只收录摸到后能让向听数严格变小的牌种。
type UkeireSet map[Tile]int

// Total 有效进张总张数。
func (u UkeireSet) Total() int {
	total := 0
	for _, c := range u {
		total += c
	}
	return total
}

// Tiles 按编号升序返回进张牌种。
func (u UkeireSet) Tiles() []Tile {
	tiles := make([]Tile, 0, len(u))
	for i := range Tile(TileKindCount) {
		if _, ok := u[i]; ok {
			tiles = append(tiles, i)
		}
	}
	return tiles
}

// CalcUkeire 枚举27种牌逐一模拟摸牌，重新整算向听，收集能推进的牌种。
// 每次模拟都在循环内加一张、算完立即还原。手牌不是13张返回ErrInvalidHandSize。
func CalcUkeire(v TileVector) (UkeireSet, error) {
	if err := v.checkHand(TileCountInitNormal); err != nil {
		return nil, err
	}

	baseline := calcShantenAny(v)
	res := make(UkeireSet)
	for i := range v {
		if int(v[i]) >= SameTileCount {
			continue
		}
		v[i]++
		step := calcShantenAny(v)
		v[i]--
		if step < baseline {
			res[Tile(i)] = SameTileCount - int(v[i])
		}
	}
	return res, nil
}
