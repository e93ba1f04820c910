package llm

import "golang.org/x/sync/semaphore"

// TextSem 文本模型并发上限，防止单实例打爆上游配额
var TextSem = semaphore.NewWeighted(4)
