package mahjong

// 拆解搜索：从0号格向后扫，对第一个非空格枚举刻子/顺子/将/搭子，
// 逐格改计数、递归、再还原。深度最多27格，分支很小，不做记忆化也足够快；
// 需要复用时由Evaluator在外层按整向量做缓存。

// canFormMelds 判断向量能否恰好拆成need组面子（刻子或顺子），不留散牌。
func canFormMelds(v *TileVector, need int) bool {
	i := firstKind(v, 0)
	if i < 0 {
		return need == 0
	}
	if need == 0 {
		return false
	}

	// 刻子
	if v[i] >= 3 {
		v[i] -= 3
		ok := canFormMelds(v, need-1)
		v[i] += 3
		if ok {
			return true
		}
	}

	// 顺子（同门连续三点）
	if Tile(i).Point() <= PointCount-3 && v[i] > 0 && v[i+1] > 0 && v[i+2] > 0 {
		v[i]--
		v[i+1]--
		v[i+2]--
		ok := canFormMelds(v, need-1)
		v[i]++
		v[i+1]++
		v[i+2]++
		if ok {
			return true
		}
	}

	return false
}

// bestBlockShanten 标准型块计数搜索。
// melds=已成面子数，pair=雀头(0/1)，partials=搭子数（对倒/两面/坎张），
// 对每个局部配置套用公式 (4-melds)*2 - partials - pair，取全局最小。
// 搭子数超过4-melds的部分没有面子位可用，计数时截断。
func bestBlockShanten(v *TileVector) int {
	best := maxShanten
	dfsBlocks(v, 0, 0, 0, 0, &best)
	return best
}

// 8 = (4-0)*2，零块13张散牌的上界。
const maxShanten = 8

func dfsBlocks(v *TileVector, from, melds, pair, partials int, best *int) {
	if melds > 4 {
		return
	}

	useful := partials
	if limit := 4 - melds; useful > limit {
		useful = limit
	}
	if sh := maxShanten - 2*melds - useful - pair; sh < *best {
		*best = sh
	}

	i := firstKind(v, from)
	if i < 0 {
		return
	}

	// 刻子
	if v[i] >= 3 {
		v[i] -= 3
		dfsBlocks(v, i, melds+1, pair, partials, best)
		v[i] += 3
	}

	// 顺子
	if Tile(i).Point() <= PointCount-3 && v[i] > 0 && v[i+1] > 0 && v[i+2] > 0 {
		v[i]--
		v[i+1]--
		v[i+2]--
		dfsBlocks(v, i, melds+1, pair, partials, best)
		v[i]++
		v[i+1]++
		v[i+2]++
	}

	// 雀头，整手只占一个
	if pair == 0 && v[i] >= 2 {
		v[i] -= 2
		dfsBlocks(v, i, melds, 1, partials, best)
		v[i] += 2
	}

	// 对倒搭子（两张等成刻子）
	if v[i] >= 2 {
		v[i] -= 2
		dfsBlocks(v, i, melds, pair, partials+1, best)
		v[i] += 2
	}

	// 两面/边张搭子
	if Tile(i).Point() <= PointCount-2 && v[i] > 0 && v[i+1] > 0 {
		v[i]--
		v[i+1]--
		dfsBlocks(v, i, melds, pair, partials+1, best)
		v[i]++
		v[i+1]++
	}

	// 坎张搭子
	if Tile(i).Point() <= PointCount-3 && v[i] > 0 && v[i+2] > 0 {
		v[i]--
		v[i+2]--
		dfsBlocks(v, i, melds, pair, partials+1, best)
		v[i]++
		v[i+2]++
	}

	// 弃掉这张散牌
	v[i]--
	dfsBlocks(v, i, melds, pair, partials, best)
	v[i]++
}

// firstKind 返回from之后第一个计数非零的格，找不到返回-1。
func firstKind(v *TileVector, from int) int {
	for i := from; i < TileKindCount; i++ {
		if v[i] > 0 {
			return i
		}
	}
	return -1
}
