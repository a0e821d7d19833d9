package i18n

var zhCN = map[string]string{
	"app.name":           "电竞助手",
	"table.nickname":     "昵称",
	"table.status":       "状态",
	"table.regions":      "直播赛区",
	"table.drops":        "总掉落",
	"table.hours":        "总时长",
	"table.lastCheck":    "上次检测",
	"table.nextCheck":    "下次检测",
	"table.nextMatch":    "下场比赛",
	"phase.checking":     "检查中",
	"phase.loggingIn":    "登录中",
	"phase.initializing": "初始化",
	"phase.watching":     "观看中",
	"phase.sleeping":     "休眠中",
	"panel.sessionDrops": "运行期间掉宝",
	"panel.todayDrops":   "今日掉宝",
	"panel.noDrops":      "暂无掉宝",
	"panel.liveInfo":     "直播信息",
	"panel.briefLog":     "简略日志",
	"panel.seeLogFile":   "(详细请见log文件)",
	"panel.safeMode":     "安全模式: ",
	"config.proxy":       "代理",
	"config.maxStream":   "最大直播数",
	"config.debugPort":   "调试端口",
	"webhook.label":      "Webhook",
	"sleep.period":       "休眠时段",
	"warning.noDrops":    "无掉宝",
	"warning.stuck":      "卡顿",
	"fault.dashboard":    "看板线程异常",
	"demo.login":         "账号登录成功",
	"demo.drop":          "获得掉宝",
	"demo.check":         "检查直播",
}

var zhTW = map[string]string{
	"app.name":           "電競助手",
	"table.nickname":     "暱稱",
	"table.status":       "狀態",
	"table.regions":      "直播賽區",
	"table.drops":        "總掉落",
	"table.hours":        "總時長",
	"table.lastCheck":    "上次檢測",
	"table.nextCheck":    "下次檢測",
	"table.nextMatch":    "下場比賽",
	"phase.checking":     "檢查中",
	"phase.loggingIn":    "登入中",
	"phase.initializing": "初始化",
	"phase.watching":     "觀看中",
	"phase.sleeping":     "休眠中",
	"panel.sessionDrops": "運行期間掉寶",
	"panel.todayDrops":   "今日掉寶",
	"panel.noDrops":      "暫無掉寶",
	"panel.liveInfo":     "直播資訊",
	"panel.briefLog":     "簡略日誌",
	"panel.seeLogFile":   "(詳細請見log檔案)",
	"panel.safeMode":     "安全模式: ",
	"config.proxy":       "代理",
	"config.maxStream":   "最大直播數",
	"config.debugPort":   "除錯埠",
	"webhook.label":      "Webhook",
	"sleep.period":       "休眠時段",
	"warning.noDrops":    "無掉寶",
	"warning.stuck":      "卡頓",
	"fault.dashboard":    "看板執行緒異常",
	"demo.login":         "帳號登入成功",
	"demo.drop":          "獲得掉寶",
	"demo.check":         "檢查直播",
}

var enUS = map[string]string{
	"app.name":           "Esports Helper",
	"table.nickname":     "Nickname",
	"table.status":       "Status",
	"table.regions":      "Live Regions",
	"table.drops":        "Drops",
	"table.hours":        "Watch Hours",
	"table.lastCheck":    "Last Check",
	"table.nextCheck":    "Next Check",
	"table.nextMatch":    "Next Match",
	"phase.checking":     "Checking",
	"phase.loggingIn":    "Logging in",
	"phase.initializing": "Initializing",
	"phase.watching":     "Watching",
	"phase.sleeping":     "Sleeping",
	"panel.sessionDrops": "Drops This Session",
	"panel.todayDrops":   "Today",
	"panel.noDrops":      "No drops yet",
	"panel.liveInfo":     "Live Streams",
	"panel.briefLog":     "Brief Log",
	"panel.seeLogFile":   "(see log file for details)",
	"panel.safeMode":     "Safe mode: ",
	"config.proxy":       "Proxy",
	"config.maxStream":   "Max streams",
	"config.debugPort":   "Debug port",
	"webhook.label":      "Webhook",
	"sleep.period":       "Sleep",
	"warning.noDrops":    "no drops",
	"warning.stuck":      "stuck",
	"fault.dashboard":    "dashboard thread exception",
	"demo.login":         "account logged in",
	"demo.drop":          "drop received",
	"demo.check":         "checking live streams",
}
