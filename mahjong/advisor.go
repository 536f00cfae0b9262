package mahjong

import "sort"

// DiscardAdvice 打掉某张牌后的牌力评估。
type DiscardAdvice struct {
	Tile        Tile      // 候选弃牌
	Shanten     int       // 弃牌后的向听数
	Ukeire      UkeireSet // 弃牌后的进张表
	UkeireTotal int       // 进张总张数
}

// BestDiscards 对14张手牌逐一试打每个持有的牌种，评估剩下13张的向听与进张，
// 按进张总数降序排序，平局先比向听小、再比牌编号小，保证结果确定。
// 只做建议，不改动调用方的手牌。手牌不是14张返回ErrInvalidHandSize。
func BestDiscards(v TileVector) ([]DiscardAdvice, error) {
	if err := v.checkHand(TileCountInitBanker); err != nil {
		return nil, err
	}

	res := make([]DiscardAdvice, 0, TileKindCount)
	for i := range v {
		if v[i] == 0 {
			continue
		}
		v[i]--
		step := calcShantenAny(v)
		ukeire, err := CalcUkeire(v)
		v[i]++
		if err != nil {
			return nil, err
		}
		res = append(res, DiscardAdvice{
			Tile:        Tile(i),
			Shanten:     step,
			Ukeire:      ukeire,
			UkeireTotal: ukeire.Total(),
		})
	}

	sortAdvices(res)
	return res, nil
}

func sortAdvices(res []DiscardAdvice) {
	sort.Slice(res, func(i, j int) bool {
		if res[i].UkeireTotal != res[j].UkeireTotal {
			return res[i].UkeireTotal > res[j].UkeireTotal
		}
		if res[i].Shanten != res[j].Shanten {
			return res[i].Shanten < res[j].Shanten
		}
		return res[i].Tile < res[j].Tile
	})
}
