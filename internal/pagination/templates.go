package pagination

const bootstrap4Template = `<nav>
    <ul class="pagination">
        {{- if .OnFirstPage}}
        <li class="page-item disabled" aria-disabled="true" aria-label="&laquo; Previous"><span class="page-link" aria-hidden="true">&lsaquo;</span></li>
        {{- else}}
        <li class="page-item"><a class="page-link" href="{{.PreviousURL}}" rel="prev" aria-label="&laquo; Previous">&lsaquo;</a></li>
        {{- end}}
        {{- range .Elements}}
        {{- if .Gap}}
        <li class="page-item disabled" aria-disabled="true"><span class="page-link">...</span></li>
        {{- else}}
        {{- range .Pages}}
        {{- if .Active}}
        <li class="page-item active" aria-current="page"><span class="page-link">{{.Number}}</span></li>
        {{- else}}
        <li class="page-item"><a class="page-link" href="{{.URL}}">{{.Number}}</a></li>
        {{- end}}
        {{- end}}
        {{- end}}
        {{- end}}
        {{- if .HasMorePages}}
        <li class="page-item"><a class="page-link" href="{{.NextURL}}" rel="next" aria-label="Next &raquo;">&rsaquo;</a></li>
        {{- else}}
        <li class="page-item disabled" aria-disabled="true" aria-label="Next &raquo;"><span class="page-link" aria-hidden="true">&rsaquo;</span></li>
        {{- end}}
    </ul>
</nav>`

const bootstrap5Template = `<nav class="d-flex justify-items-center justify-content-between">
    <div class="d-none flex-sm-fill d-sm-flex align-items-sm-center justify-content-sm-between">
        <div>
            <p class="small text-muted">Showing <span class="fw-semibold">{{.FirstItem}}</span> to <span class="fw-semibold">{{.LastItem}}</span> of <span class="fw-semibold">{{.Total}}</span> results</p>
        </div>
        <div>
            <ul class="pagination">
                {{- if .OnFirstPage}}
                <li class="page-item disabled" aria-disabled="true" aria-label="&laquo; Previous"><span class="page-link" aria-hidden="true">&lsaquo;</span></li>
                {{- else}}
                <li class="page-item"><a class="page-link" href="{{.PreviousURL}}" rel="prev" aria-label="&laquo; Previous">&lsaquo;</a></li>
                {{- end}}
                {{- range .Elements}}
                {{- if .Gap}}
                <li class="page-item disabled" aria-disabled="true"><span class="page-link">...</span></li>
                {{- else}}
                {{- range .Pages}}
                {{- if .Active}}
                <li class="page-item active" aria-current="page"><span class="page-link">{{.Number}}</span></li>
                {{- else}}
                <li class="page-item"><a class="page-link" href="{{.URL}}">{{.Number}}</a></li>
                {{- end}}
                {{- end}}
                {{- end}}
                {{- end}}
                {{- if .HasMorePages}}
                <li class="page-item"><a class="page-link" href="{{.NextURL}}" rel="next" aria-label="Next &raquo;">&rsaquo;</a></li>
                {{- else}}
                <li class="page-item disabled" aria-disabled="true" aria-label="Next &raquo;"><span class="page-link" aria-hidden="true">&rsaquo;</span></li>
                {{- end}}
            </ul>
        </div>
    </div>
</nav>`

const tailwindTemplate = `<nav role="navigation" aria-label="Pagination Navigation" class="flex items-center justify-between">
    <div class="hidden sm:flex-1 sm:flex sm:items-center sm:justify-between">
        <p class="text-sm text-gray-700 leading-5">Showing <span class="font-medium">{{.FirstItem}}</span> to <span class="font-medium">{{.LastItem}}</span> of <span class="font-medium">{{.Total}}</span> results</p>
        <span class="relative z-0 inline-flex rounded-md shadow-sm">
            {{- if .OnFirstPage}}
            <span aria-disabled="true" aria-label="&laquo; Previous"><span class="relative inline-flex items-center px-2 py-2 text-sm font-medium text-gray-500 bg-white border border-gray-300 cursor-default rounded-l-md leading-5" aria-hidden="true">&lsaquo;</span></span>
            {{- else}}
            <a href="{{.PreviousURL}}" rel="prev" class="relative inline-flex items-center px-2 py-2 text-sm font-medium text-gray-500 bg-white border border-gray-300 rounded-l-md leading-5" aria-label="&laquo; Previous">&lsaquo;</a>
            {{- end}}
            {{- range .Elements}}
            {{- if .Gap}}
            <span aria-disabled="true"><span class="relative inline-flex items-center px-4 py-2 -ml-px text-sm font-medium text-gray-700 bg-white border border-gray-300 cursor-default leading-5">...</span></span>
            {{- else}}
            {{- range .Pages}}
            {{- if .Active}}
            <span aria-current="page"><span class="relative inline-flex items-center px-4 py-2 -ml-px text-sm font-medium text-gray-500 bg-white border border-gray-300 cursor-default leading-5">{{.Number}}</span></span>
            {{- else}}
            <a href="{{.URL}}" class="relative inline-flex items-center px-4 py-2 -ml-px text-sm font-medium text-gray-700 bg-white border border-gray-300 leading-5" aria-label="Go to page {{.Number}}">{{.Number}}</a>
            {{- end}}
            {{- end}}
            {{- end}}
            {{- end}}
            {{- if .HasMorePages}}
            <a href="{{.NextURL}}" rel="next" class="relative inline-flex items-center px-2 py-2 -ml-px text-sm font-medium text-gray-500 bg-white border border-gray-300 rounded-r-md leading-5" aria-label="Next &raquo;">&rsaquo;</a>
            {{- else}}
            <span aria-disabled="true" aria-label="Next &raquo;"><span class="relative inline-flex items-center px-2 py-2 -ml-px text-sm font-medium text-gray-500 bg-white border border-gray-300 cursor-default rounded-r-md leading-5" aria-hidden="true">&rsaquo;</span></span>
            {{- end}}
        </span>
    </div>
</nav>`

const simpleTailwindTemplate = `<nav role="navigation" aria-label="Pagination Navigation" class="flex justify-between">
    {{- if .OnFirstPage}}
    <span class="relative inline-flex items-center px-4 py-2 text-sm font-medium text-gray-500 bg-white border border-gray-300 cursor-default leading-5 rounded-md">&laquo; Previous</span>
    {{- else}}
    <a href="{{.PreviousURL}}" rel="prev" class="relative inline-flex items-center px-4 py-2 text-sm font-medium text-gray-700 bg-white border border-gray-300 leading-5 rounded-md">&laquo; Previous</a>
    {{- end}}
    {{- if .HasMorePages}}
    <a href="{{.NextURL}}" rel="next" class="relative inline-flex items-center px-4 py-2 text-sm font-medium text-gray-700 bg-white border border-gray-300 leading-5 rounded-md">Next &raquo;</a>
    {{- else}}
    <span class="relative inline-flex items-center px-4 py-2 text-sm font-medium text-gray-500 bg-white border border-gray-300 cursor-default leading-5 rounded-md">Next &raquo;</span>
    {{- end}}
</nav>`

const simpleBootstrap4Template = `<nav>
    <ul class="pagination">
        {{- if .OnFirstPage}}
        <li class="page-item disabled" aria-disabled="true"><span class="page-link">&laquo; Previous</span></li>
        {{- else}}
        <li class="page-item"><a class="page-link" href="{{.PreviousURL}}" rel="prev">&laquo; Previous</a></li>
        {{- end}}
        {{- if .HasMorePages}}
        <li class="page-item"><a class="page-link" href="{{.NextURL}}" rel="next">Next &raquo;</a></li>
        {{- else}}
        <li class="page-item disabled" aria-disabled="true"><span class="page-link">Next &raquo;</span></li>
        {{- end}}
    </ul>
</nav>`

const simpleBootstrap5Template = `<nav role="navigation" aria-label="Pagination Navigation">
    <ul class="pagination">
        {{- if .OnFirstPage}}
        <li class="page-item disabled" aria-disabled="true"><span class="page-link">&laquo; Previous</span></li>
        {{- else}}
        <li class="page-item"><a class="page-link" href="{{.PreviousURL}}" rel="prev">&laquo; Previous</a></li>
        {{- end}}
        {{- if .HasMorePages}}
        <li class="page-item"><a class="page-link" href="{{.NextURL}}" rel="next">Next &raquo;</a></li>
        {{- else}}
        <li class="page-item disabled" aria-disabled="true"><span class="page-link">Next &raquo;</span></li>
        {{- end}}
    </ul>
</nav>`
