package mahjong

// CheckHu 判断14张手牌是否胡牌：标准型（4面子+将）或七对，两条路任一成立即胡。
// 手牌总数不是14张返回ErrInvalidHandSize。
func CheckHu(v TileVector) (bool, error) {
	if err := v.checkHand(TileCountInitBanker); err != nil {
		return false, err
	}
	return checkStandardHu(v) || checkSevenPairs(v), nil
}

// checkStandardHu 标准型：枚举每个可作将的牌种，摘掉一对后剩12张恰拆4组面子。
func checkStandardHu(v TileVector) bool {
	for i := range v {
		if v[i] < 2 {
			continue
		}
		v[i] -= 2
		ok := canFormMelds(&v, 4)
		v[i] += 2
		if ok {
			return true
		}
	}
	return false
}

// checkSevenPairs 七对：每种牌2张或4张，4张算两对（龙七对也在此内），合计正好7对。
func checkSevenPairs(v TileVector) bool {
	pairCount := 0
	for _, c := range v {
		switch c {
		case 0:
		case 2:
			pairCount++
		case 4:
			pairCount += 2
		default:
			return false
		}
	}
	return pairCount == 7
}
