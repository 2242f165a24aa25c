package handlers

import (
	"html/template"
	"net/http"
)

// WidgetHandler serves the embeddable chat widget: a demo host page at /
// and the widget script at /widget.js. Any page that includes the script
// and a <div id="travelplan-chat"></div> gets the floating assistant.
type WidgetHandler struct {
	pageTmpl   *template.Template
	scriptTmpl *template.Template
}

func NewWidgetHandler() *WidgetHandler {
	return &WidgetHandler{
		pageTmpl:   template.Must(template.New("page").Parse(demoPage)),
		scriptTmpl: template.Must(template.New("widget").Parse(widgetScript)),
	}
}

func (h *WidgetHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/widget.js", h.handleScript)
}

func (h *WidgetHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.pageTmpl.Execute(w, nil)
}

func (h *WidgetHandler) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	h.scriptTmpl.Execute(w, nil)
}

const demoPage = `<!DOCTYPE html>
<html>
<head>
    <title>TravelPlan</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
        .header { background: #2c2c2c; color: white; padding: 20px; border-radius: 12px; margin-bottom: 20px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .header h1 { margin: 0; font-size: 1.5em; }
        .header p { margin: 8px 0 0; color: #bbb; }
        .card { background: white; border-radius: 12px; padding: 20px; margin-bottom: 16px; border: 1px solid #e0e0e0; box-shadow: 0 2px 4px rgba(0,0,0,0.05); }
        .card h2 { margin-top: 0; font-size: 1.1em; }
        code { background: #f0f0f0; padding: 2px 6px; border-radius: 4px; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="header">
        <h1>TravelPlan</h1>
        <p>Your AI travel companion. Open the chat bubble in the corner to start planning.</p>
    </div>
    <div class="card">
        <h2>Embed the assistant</h2>
        <p>Add the container and the script to any page:</p>
        <p><code>&lt;div id="travelplan-chat"&gt;&lt;/div&gt;</code><br>
           <code>&lt;script src="/widget.js"&gt;&lt;/script&gt;</code></p>
    </div>
    <div class="card">
        <h2>API</h2>
        <p>The widget talks to <code>POST /chat</code>. Destinations, itineraries, food, transport,
           weather, currency and translation live under <code>/api/*</code>.</p>
    </div>

    <div id="travelplan-chat"></div>
    <script src="/widget.js"></script>
</body>
</html>`

const widgetScript = `(function() {
    'use strict';

    var container = document.getElementById('travelplan-chat');
    if (!container) {
        return;
    }

    var style = document.createElement('style');
    style.textContent = [
        '#tp-toggle { position: fixed; bottom: 24px; right: 24px; width: 56px; height: 56px; border-radius: 50%; border: none; background: #2c6e49; color: white; font-size: 24px; cursor: pointer; box-shadow: 0 4px 12px rgba(0,0,0,0.25); z-index: 9999; }',
        '#tp-toggle:hover { background: #1f5236; }',
        '#tp-panel { position: fixed; bottom: 92px; right: 24px; width: 340px; height: 460px; background: white; border-radius: 12px; box-shadow: 0 8px 24px rgba(0,0,0,0.25); display: none; flex-direction: column; overflow: hidden; z-index: 9999; font-family: -apple-system, BlinkMacSystemFont, sans-serif; }',
        '#tp-panel.tp-open { display: flex; }',
        '.tp-header { background: #2c6e49; color: white; padding: 12px 16px; font-weight: 600; }',
        '.tp-messages { flex: 1; overflow-y: auto; padding: 12px; background: #fafafa; }',
        '.tp-msg { margin-bottom: 10px; max-width: 85%; padding: 8px 12px; border-radius: 10px; font-size: 14px; line-height: 1.4; word-wrap: break-word; }',
        '.tp-msg-user { background: #2c6e49; color: white; margin-left: auto; }',
        '.tp-msg-bot { background: #e9e9e9; color: #222; margin-right: auto; }',
        '.tp-typing { color: #888; font-style: italic; }',
        '.tp-input-row { display: flex; border-top: 1px solid #e0e0e0; }',
        '.tp-input-row input { flex: 1; border: none; padding: 12px; font-size: 14px; outline: none; }',
        '.tp-input-row button { border: none; background: #2c6e49; color: white; padding: 0 16px; cursor: pointer; font-size: 14px; }',
        '.tp-input-row button:disabled { background: #9bb8a9; cursor: default; }'
    ].join('\n');
    document.head.appendChild(style);

    var toggle = document.createElement('button');
    toggle.id = 'tp-toggle';
    toggle.type = 'button';
    toggle.textContent = '💬';
    toggle.setAttribute('aria-label', 'Open travel assistant');

    var panel = document.createElement('div');
    panel.id = 'tp-panel';
    panel.innerHTML =
        '<div class="tp-header">TravelPlan Assistant</div>' +
        '<div class="tp-messages" id="tp-messages"></div>' +
        '<div class="tp-input-row">' +
        '<input type="text" id="tp-input" placeholder="Ask about your trip...">' +
        '<button type="button" id="tp-send">Send</button>' +
        '</div>';

    container.appendChild(toggle);
    container.appendChild(panel);

    var messages = panel.querySelector('#tp-messages');
    var input = panel.querySelector('#tp-input');
    var sendBtn = panel.querySelector('#tp-send');
    var inFlight = false;

    toggle.addEventListener('click', function() {
        var open = panel.classList.toggle('tp-open');
        if (open) {
            input.focus();
        }
    });

    function escapeHtml(text) {
        var div = document.createElement('div');
        div.textContent = text;
        return div.innerHTML;
    }

    function renderReply(text) {
        var html = escapeHtml(text);
        html = html.replace(/\*\*([^*]+)\*\*/g, '<strong>$1</strong>');
        html = html.replace(/\*([^*]+)\*/g, '<em>$1</em>');
        html = html.replace(/\n/g, '<br>');
        return html;
    }

    function appendMessage(role, html) {
        var div = document.createElement('div');
        div.className = 'tp-msg ' + (role === 'user' ? 'tp-msg-user' : 'tp-msg-bot');
        div.innerHTML = html;
        messages.appendChild(div);
        messages.scrollTop = messages.scrollHeight;
        return div;
    }

    function sendMessage() {
        if (inFlight) {
            return;
        }
        var text = input.value.trim();
        if (!text) {
            return;
        }

        appendMessage('user', escapeHtml(text));
        input.value = '';

        inFlight = true;
        sendBtn.disabled = true;

        var typing = appendMessage('bot', 'Thinking...');
        typing.classList.add('tp-typing');

        fetch('/chat', {
            method: 'POST',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({ message: text })
        })
        .then(function(resp) {
            if (!resp.ok) {
                throw new Error('status ' + resp.status);
            }
            return resp.json();
        })
        .then(function(data) {
            typing.remove();
            if (!data || typeof data.reply !== 'string') {
                throw new Error('bad response');
            }
            appendMessage('bot', renderReply(data.reply));
        })
        .catch(function() {
            typing.remove();
            appendMessage('bot', escapeHtml('Sorry, something went wrong. Please try again.'));
        })
        .finally(function() {
            inFlight = false;
            sendBtn.disabled = false;
            input.focus();
        });
    }

    sendBtn.addEventListener('click', sendMessage);
    input.addEventListener('keydown', function(e) {
        if (e.key === 'Enter') {
            sendMessage();
        }
    });
})();`
