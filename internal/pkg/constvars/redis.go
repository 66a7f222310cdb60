package constvars

const (
	RedisKeyRemitReportPrefix = "remit:report:"
	RedisKeyRemitWorkerLock   = "remit:worker:lock"
)
