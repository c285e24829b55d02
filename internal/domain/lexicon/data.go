package lexicon

// Built-in wheat disease vocabularies and synonym rules.  Terms are the
// canonical node names stored in the knowledge graph; triggers cover the
// colloquial phrasing seen in grower messages and in the source CSV fields.

func defaultVocabularies() map[Dimension][]string {
	return map[Dimension][]string{
		DimensionPlantPart: {
			"叶片", "茎秆", "根系", "麦穗", "叶鞘", "籽粒", "幼苗", "基部", "穗部",
			"节间", "叶尖", "叶缘", "叶面", "叶背", "茎基", "茎部", "穗轴", "颖壳",
			"护颖", "芒", "根冠", "根毛", "分蘖", "主茎", "种子", "胚芽", "胚根",
			"叶基", "茎节", "穗颈", "颖片", "子房", "花药", "花丝", "胚乳", "胚部",
		},
		DimensionWeather: {
			// 温度相关
			"高温", "低温", "寒潮", "倒春寒", "热浪", "冷凉", "温暖",
			// 降水相关
			"干旱", "潮湿", "阴雨", "连阴雨", "梅雨", "暴雨", "降雨", "多雨",
			// 湿度相关
			"干燥", "湿润", "高湿", "低湿",
			// 其他气象条件
			"大风", "霜冻", "积雪", "冰雹", "沙尘", "阴天", "晴天",
			// 复合条件
			"高温高湿", "低温多雨", "干旱高温",
		},
		DimensionGrowthStage: {
			"全生育期", "生长全期", "全生长期", "苗期", "幼苗期", "出苗期",
			"3-4叶期", "4-6叶期", "越冬期", "冬前", "返青期", "拔节期",
			"分蘖期", "茎节期", "起身期", "抽穗期", "孕穗期", "开花期",
			"扬花期", "灌浆期", "乳熟期", "成熟期", "收获期", "播种期",
			"发芽期", "生育中期", "生育后期", "抽穗扬花期", "成株期",
		},
		DimensionRegion: {
			"黑龙江", "吉林", "辽宁", "河北", "山西", "山东", "河南", "江苏", "浙江",
			"安徽", "江西", "福建", "广东", "广西", "海南", "湖北", "湖南", "四川",
			"贵州", "云南", "陕西", "甘肃", "青海", "台湾", "北京", "天津", "上海",
			"重庆", "内蒙古", "新疆", "西藏", "宁夏",
			"东北", "华北", "华东", "华南",
			"华中", "西北", "西南",
			"东北平原区", "云贵高原区", "北方干旱半干旱区",
			"华南区", "四川盆地区", "长江中下游区", "青藏高原区", "黄土高原区",
			"黄淮海平原区",
			"全国各地", "南方", "北方", "西部", "东部",
		},
	}
}

func defaultRules() map[Dimension][]Rule {
	return map[Dimension][]Rule{
		DimensionPlantPart: {
			// 基本映射
			{Triggers: []string{"叶"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"茎"}, Canonical: []string{"茎秆"}},
			{Triggers: []string{"根"}, Canonical: []string{"根系"}},
			{Triggers: []string{"穗"}, Canonical: []string{"麦穗"}},
			{Triggers: []string{"颖"}, Canonical: []string{"颖壳"}},
			{Triggers: []string{"芽"}, Canonical: []string{"胚芽"}},
			{Triggers: []string{"胚"}, Canonical: []string{"胚部"}},
			{Triggers: []string{"花"}, Canonical: []string{"花药"}},
			// 叶部
			{Triggers: []string{"心叶"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"老叶"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"基部叶片"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"上部叶片"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"新叶"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"旗叶"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"叶尖"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"叶基"}, Canonical: []string{"叶片"}},
			{Triggers: []string{"叶鞘"}, Canonical: []string{"叶鞘"}},
			// 茎部
			{Triggers: []string{"茎基"}, Canonical: []string{"茎秆"}},
			{Triggers: []string{"茎部"}, Canonical: []string{"茎秆"}},
			{Triggers: []string{"秆"}, Canonical: []string{"茎秆"}},
			{Triggers: []string{"节间"}, Canonical: []string{"茎秆"}},
			{Triggers: []string{"茎节"}, Canonical: []string{"茎秆"}},
			{Triggers: []string{"基部"}, Canonical: []string{"茎秆"}},
			// 根部
			{Triggers: []string{"根冠"}, Canonical: []string{"根系"}},
			{Triggers: []string{"根毛"}, Canonical: []string{"根系"}},
			{Triggers: []string{"幼根"}, Canonical: []string{"根系"}},
			{Triggers: []string{"种子根"}, Canonical: []string{"根系"}},
			// 穗部
			{Triggers: []string{"穗部"}, Canonical: []string{"麦穗"}},
			{Triggers: []string{"穗轴"}, Canonical: []string{"麦穗"}},
			{Triggers: []string{"小穗"}, Canonical: []string{"麦穗"}},
			{Triggers: []string{"穗颈"}, Canonical: []string{"麦穗"}},
			// 颖壳
			{Triggers: []string{"颖壳"}, Canonical: []string{"颖壳"}},
			{Triggers: []string{"护颖"}, Canonical: []string{"颖壳"}},
			{Triggers: []string{"颖片"}, Canonical: []string{"颖壳"}},
			// 芽与胚
			{Triggers: []string{"胚芽鞘"}, Canonical: []string{"胚芽"}},
			{Triggers: []string{"幼芽"}, Canonical: []string{"胚芽"}},
			{Triggers: []string{"子房"}, Canonical: []string{"胚部"}},
			{Triggers: []string{"胚根"}, Canonical: []string{"胚部"}},
			{Triggers: []string{"胚乳"}, Canonical: []string{"胚部"}},
			// 花部
			{Triggers: []string{"花丝"}, Canonical: []string{"花药"}},
			{Triggers: []string{"花器"}, Canonical: []string{"花药"}},
		},
		DimensionWeather: {
			{Triggers: []string{"温度高"}, Canonical: []string{"高温"}},
			{Triggers: []string{"气温高"}, Canonical: []string{"高温"}},
			{Triggers: []string{"温度低"}, Canonical: []string{"低温"}},
			{Triggers: []string{"气温低"}, Canonical: []string{"低温"}},
			{Triggers: []string{"降水"}, Canonical: []string{"降雨"}},
			{Triggers: []string{"下雨"}, Canonical: []string{"降雨"}},
			{Triggers: []string{"雨天"}, Canonical: []string{"阴雨"}},
			{Triggers: []string{"干燥"}, Canonical: []string{"干旱"}},
			{Triggers: []string{"湿润"}, Canonical: []string{"潮湿"}},
			// 同义词组
			{Triggers: []string{"高温", "温度高", "气温高"}, Canonical: []string{"高温"}, Grouped: true},
			{Triggers: []string{"低温", "温度低", "气温低"}, Canonical: []string{"低温"}, Grouped: true},
			{Triggers: []string{"降水", "下雨", "降雨"}, Canonical: []string{"降雨"}, Grouped: true},
			{Triggers: []string{"干旱", "干燥", "缺水"}, Canonical: []string{"干旱"}, Grouped: true},
			// 复合条件
			{Triggers: []string{"高温干旱"}, Canonical: []string{"高温", "干旱"}},
			{Triggers: []string{"低温阴雨"}, Canonical: []string{"低温", "阴雨"}},
		},
		DimensionGrowthStage: {
			{Triggers: []string{"开花"}, Canonical: []string{"开花期"}},
			{Triggers: []string{"抽穗"}, Canonical: []string{"抽穗期"}},
			{Triggers: []string{"返青"}, Canonical: []string{"返青期"}},
			{Triggers: []string{"成熟"}, Canonical: []string{"成熟期"}},
			{Triggers: []string{"播种"}, Canonical: []string{"播种期"}},
			{Triggers: []string{"发芽"}, Canonical: []string{"发芽期"}},
			{Triggers: []string{"越冬"}, Canonical: []string{"越冬期"}},
			{Triggers: []string{"拔节"}, Canonical: []string{"拔节期"}},
			{Triggers: []string{"分蘖"}, Canonical: []string{"分蘖期"}},
			{Triggers: []string{"灌浆"}, Canonical: []string{"灌浆期"}},
			{Triggers: []string{"收获"}, Canonical: []string{"收获期"}},
			{Triggers: []string{"出苗"}, Canonical: []string{"出苗期"}},
			{Triggers: []string{"幼苗"}, Canonical: []string{"幼苗期"}},
			{Triggers: []string{"孕穗"}, Canonical: []string{"孕穗期"}},
			{Triggers: []string{"扬花"}, Canonical: []string{"扬花期"}},
			{Triggers: []string{"生育中"}, Canonical: []string{"生育中期"}},
			{Triggers: []string{"生育后"}, Canonical: []string{"生育后期"}},
			{Triggers: []string{"全生育"}, Canonical: []string{"全生育期"}},
			{Triggers: []string{"生长全"}, Canonical: []string{"全生育期"}},
			// 时间相关
			{Triggers: []string{"初期"}, Canonical: []string{"苗期"}},
			{Triggers: []string{"前期"}, Canonical: []string{"苗期"}},
			{Triggers: []string{"中期"}, Canonical: []string{"生育中期"}},
			{Triggers: []string{"后期"}, Canonical: []string{"生育后期"}},
			{Triggers: []string{"末期"}, Canonical: []string{"成熟期"}},
			// 复合表达
			{Triggers: []string{"抽穗开花"}, Canonical: []string{"抽穗期"}},
			{Triggers: []string{"抽穗扬花"}, Canonical: []string{"抽穗期"}},
			{Triggers: []string{"灌浆成熟"}, Canonical: []string{"灌浆期"}},
			// 同义词组
			{Triggers: []string{"出苗", "发苗"}, Canonical: []string{"出苗期"}, Grouped: true},
			{Triggers: []string{"幼苗", "小苗"}, Canonical: []string{"幼苗期"}, Grouped: true},
			{Triggers: []string{"成熟", "成熟时"}, Canonical: []string{"成熟期"}, Grouped: true},
		},
		DimensionRegion: nil,
	}
}

//Personal.AI order the ending
