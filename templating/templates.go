package templating

import (
	"embed"
	"fmt"
	"html/template"
	"sync"
)

//go:embed html/*.html
var files embed.FS

type templates struct {
	lock   sync.Mutex
	cached map[string]*template.Template
}

var instance *templates
var singletonLock = &sync.Once{}

func getInstance() *templates {
	if instance == nil {
		singletonLock.Do(func() {
			instance = &templates{
				cached: make(map[string]*template.Template),
			}
		})
	}
	return instance
}

func GetTemplate(name string) (*template.Template, error) {
	i := getInstance()
	i.lock.Lock()
	defer i.lock.Unlock()
	if v, ok := i.cached[name]; ok {
		return v, nil
	}

	fname := fmt.Sprintf("%s.html", name)
	t, err := template.New(fname).ParseFS(files, "html/"+fname)
	if err != nil {
		return nil, err
	}

	i.cached[name] = t
	return t, nil
}
