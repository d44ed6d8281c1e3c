package globals

var WebReloadChan = make(chan bool)
var MetricsReloadChan = make(chan bool)
var RenderPoolReloadChan = make(chan bool)
