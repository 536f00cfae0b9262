package mahjong

// CalcShanten 计算13张手牌的向听数：0为听牌，越大离胡越远。
// 取标准型与七对两种牌型的较小值。手牌不是13张返回ErrInvalidHandSize。
func CalcShanten(v TileVector) (int, error) {
	if err := v.checkHand(TileCountInitNormal); err != nil {
		return 0, err
	}
	return calcShantenAny(v), nil
}

// calcShantenAny 不限张数的向听计算，13张最小为0，14张胡牌时为-1。
// CalcUkeire模拟摸牌后的14张评估走这里。
func calcShantenAny(v TileVector) int {
	step := bestBlockShanten(&v)
	if qd := sevenPairsShanten(&v); qd < step {
		step = qd
	}
	return step
}

// sevenPairsShanten 七对向听：6减去现有对数。
// 本玩法龙七对成立，4张算两对，与CheckHu的七对判定保持一致，
// 因此不需要再按牌种数补惩罚项。
func sevenPairsShanten(v *TileVector) int {
	pairCount := 0
	for _, c := range v {
		pairCount += int(c) / 2
	}
	return 6 - pairCount
}
